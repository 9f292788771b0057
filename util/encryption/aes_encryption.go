package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	aesKeyLength	= 32 // 256 bits
	aesKeyFilePerms	= 0600
)

// AES-GCM encryption with a key read lazily from a base64 encoded key file
type AesEncryption struct {
	KeyFilePath	string

	once	sync.Once
	aead	cipher.AEAD
	keyErr	error
}

func NewAesEncryption(keyFilePath string) *AesEncryption {
	return &AesEncryption{KeyFilePath: keyFilePath}
}

func (e *AesEncryption) aesGcm() (cipher.AEAD, error) {
	e.once.Do(func() {
		key, err := readKeyFile(e.KeyFilePath)
		if err != nil {
			e.keyErr = err
			return
		}
		block, err := aes.NewCipher(key)
		if err != nil {
			e.keyErr = err
			return
		}
		e.aead, e.keyErr = cipher.NewGCM(block)
	})
	return e.aead, e.keyErr
}

// decrypt the given base64 encoded string
func (e *AesEncryption) Decrypt(encryptedText string) (string, error) {
	aead, err := e.aesGcm()
	if err != nil {
		return "", fmt.Errorf("error decrypting text: %v", err)
	}
	data, err := base64.StdEncoding.DecodeString(encryptedText)
	if err != nil {
		return "", fmt.Errorf("error decrypting text: %v", err)
	}
	if len(data) < aead.NonceSize() {
		return "", fmt.Errorf("error decrypting text: encrypted value is shorter than the nonce size (%d)", aead.NonceSize())
	}
	nonce, sealed := data[:aead.NonceSize()], data[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("error decrypting text: %v", err)
	}
	return string(plain), nil
}

// encrypt the given string and return a base64 encoded string of the nonce followed by the sealed value
func (e *AesEncryption) Encrypt(unencryptedText string) (string, error) {
	aead, err := e.aesGcm()
	if err != nil {
		return "", fmt.Errorf("error encrypting text: %v", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error encrypting text: %v", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(unencryptedText), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func readKeyFile(path string) ([]byte, error) {
	encodedKey, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(string(encodedKey))
	if err != nil {
		return nil, err
	}
	if len(key) != aesKeyLength {
		return nil, fmt.Errorf("number of bytes in key file (%s) is not as expected (%d)", path, aesKeyLength)
	}
	return key, nil
}

// generate a new key file in the given path unless one exists there already
func GenerateAesKeyFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	key := make([]byte, aesKeyLength)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(base64.StdEncoding.EncodeToString(key)), aesKeyFilePerms)
}
