package encryption

// reversible encryption of values stored at rest, such as grader passwords
type Encryption interface {
	Decrypt(encryptedText string) (string, error)
	Encrypt(unencryptedText string) (string, error)
}
