// facade for accessing the DB
package db

import (
	"bytes"
	"encoding/json"
	"github.com/boltdb/bolt"
)

// resolve the given bucket inside the given transaction or return an ErrBucketNotFound
func bucketOf(tx *bolt.Tx, bucket []byte, action string) (*bolt.Bucket, error) {
	dbBucket := tx.Bucket(bucket)
	if dbBucket == nil {
		err := &ErrBucketNotFound{string(bucket)}
		logger.WithError(err).Errorf("error %s \"%s\" bucket", action, string(bucket))
		return nil, err
	}
	return dbBucket, nil
}

// update (or create, if they don't exist yet) the given elements in the DB
func Update(asUser string, elements ...IBucketElement) error {
	if len(elements) == 0 {
		return nil
	}
	return db.Update(func (tx *bolt.Tx) error {
		for _, element := range elements {
			dbBucket, err := bucketOf(tx, element.Bucket(), "updating")
			if err != nil {
				return err
			}
			key := element.Key()
			if dbBucket.Get(key) == nil {
				logger.Debugf("inserting element with key = \"%s\" into \"%s\" bucket", string(key), string(element.Bucket()))
				element.MarkInsert(asUser)
			} else {
				logger.Debugf("updating element with key = \"%s\" in \"%s\" bucket", string(key), string(element.Bucket()))
				element.MarkUpdate(asUser)
			}
			objectBytes, err := json.Marshal(element)
			if err != nil {
				logger.WithError(err).Errorf("error updating key = \"%s\" in \"%s\" bucket", string(key), string(element.Bucket()))
				return err
			}
			if err := dbBucket.Put(key, objectBytes); err != nil {
				logger.WithError(err).Errorf("error updating key = \"%s\" in \"%s\" bucket", string(key), string(element.Bucket()))
				return err
			}
		}
		return nil
	})
}

// delete the given elements (if they exist) from the DB
func Delete(elements ...IBucketElement) error {
	if len(elements) == 0 {
		return nil
	}
	return db.Update(func (tx *bolt.Tx) error {
		for _, element := range elements {
			dbBucket, err := bucketOf(tx, element.Bucket(), "deleting elements from")
			if err != nil {
				return err
			}
			if err := dbBucket.Delete(element.Key()); err != nil {
				logger.WithError(err).Errorf("error deleting key = \"%s\" from \"%s\" bucket", string(element.Key()), string(element.Bucket()))
				return err
			}
		}
		return nil
	})
}

// determines if the given key exists in the given bucket
func KeyExistsInBucket(bucket, key []byte) (bool, error) {
	exists := false
	err := db.View(func (tx *bolt.Tx) error {
		dbBucket, err := bucketOf(tx, bucket, "querying")
		if err != nil {
			return err
		}
		exists = dbBucket.Get(key) != nil
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// a function that accepts the bucket element key and data and processes it using the implemented strategy
type BucketElementProcessingFunc func([]byte, []byte) error

// given a bucket and a processing function, process all elements in that bucket in key order
func QueryBucket(bucket []byte, process BucketElementProcessingFunc) error {
	return QueryBucketPrefix(bucket, nil, process)
}

// process all elements in the given bucket whose key starts with the given prefix, in key order. Returning
// ErrStopQuery from the processing function ends the query, and ErrElementsLeftToProcess is returned if more
// matching elements were left behind
func QueryBucketPrefix(bucket, prefix []byte, process BucketElementProcessingFunc) error {
	return db.View(func (tx *bolt.Tx) error {
		dbBucket, err := bucketOf(tx, bucket, "querying")
		if err != nil {
			return err
		}
		dbCursor := dbBucket.Cursor()
		hasPrefix := func(k []byte) bool {
			return k != nil && bytes.HasPrefix(k, prefix)
		}
		for elementKey, elementBytes := dbCursor.Seek(prefix); hasPrefix(elementKey); elementKey, elementBytes = dbCursor.Next() {
			if err := process(elementKey, elementBytes); err != nil {
				if _, ok := err.(*ErrStopQuery); ok {
					if nextKey, _ := dbCursor.Next(); hasPrefix(nextKey) {
						return &ErrElementsLeftToProcess{}
					}
					return nil
				}
				logger.WithError(err).Errorf("error querying \"%s\" bucket", string(bucket))
				return err
			}
		}
		return nil
	})
}

// given a bucket and a key, return the bytes of the data assigned with that key
func GetFromBucket(bucket, key []byte) ([]byte, error) {
	var data []byte
	if err := db.View(func (tx *bolt.Tx) error {
		dbBucket, err := bucketOf(tx, bucket, "accessing")
		if err != nil {
			return err
		}
		bytesOfKey := dbBucket.Get(key)
		if bytesOfKey == nil {
			err := &ErrKeyNotFoundInBucket{string(bucket), string(key)}
			logger.WithError(err).Errorf("error accessing \"%s\" key in \"%s\" bucket", string(key), string(bucket))
			return err
		}
		// bolt owned memory is only valid during the transaction
		data = append([]byte(nil), bytesOfKey...)
		return nil
	}); err != nil {
		return nil, err
	}
	return data, nil
}
