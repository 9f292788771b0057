package server

import (
	"crypto/tls"
	"fmt"
	"github.com/DAv10195/submit_photos/roster"
)

const (
	DefPort 		= 8080
	DefUploadLimit	= "8M"
)

// submit photos server configuration
type Config struct {
	Port						int
	// resolves the maximum photo upload size shown on the student photos page
	UploadLimit					roster.UploadLimitProvider
	TlsConfig					*tls.Config
}

// returns a tls config with the given certificate and key, or nil if neither is given
func GetTlsConfig(certFile, keyFile string) (*tls.Config, error) {
	if certFile == "" && keyFile == "" {
		return nil, nil
	}
	if certFile == "" || keyFile == "" {
		return nil, fmt.Errorf("both a certificate file and a key file are required for tls")
	}
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	return &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}, nil
}
