package db

import "github.com/DAv10195/submit_photos/util/encryption"

var dbEncryption encryption.Encryption

func initDbEncryption(encryptionKeyFilePath string) error {
	if err := encryption.GenerateAesKeyFile(encryptionKeyFilePath); err != nil {
		return err
	}
	dbEncryption = encryption.NewAesEncryption(encryptionKeyFilePath)
	return nil
}

func Decrypt(encryptedText string) (string, error) {
	return dbEncryption.Decrypt(encryptedText)
}

func Encrypt(unEncryptedText string) (string, error) {
	return dbEncryption.Encrypt(unEncryptedText)
}
