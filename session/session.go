package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"github.com/dchest/uniuri"
	"github.com/gorilla/sessions"
	"net/http"
	"os"
	"path/filepath"
)

const (
	photosCookie		= "submit-photos-cookie"
	sessionKeyFileName	= "submit_photos_session.key"

	keyLength          	= 32
	keyFilePerms       	= 0600
	csrfTokenLength		= 32
	MaxCookieAge 		= 30 * 60

	SessionUser			= "session_user"
	sessionCsrfToken	= "csrf_token"
	CsrfTokenHeader		= "X-CSRF-Token"
)

var store *sessions.CookieStore

// load the session key from the given dir, generating it on first use, and create the cookie store
func Init(dir string) error {
	key, err := loadOrCreateKey(filepath.Join(dir, sessionKeyFileName))
	if err != nil {
		return err
	}
	store = sessions.NewCookieStore(key)
	store.Options.MaxAge = MaxCookieAge
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return nil
}

func loadOrCreateKey(keyFileName string) ([]byte, error) {
	encodedKey, err := os.ReadFile(keyFileName)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		key := make([]byte, keyLength)
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
		if err := os.WriteFile(keyFileName, []byte(base64.StdEncoding.EncodeToString(key)), keyFilePerms); err != nil {
			return nil, err
		}
		logger.Infof("created new session key file %s", keyFileName)
		return key, nil
	}
	key, err := base64.StdEncoding.DecodeString(string(encodedKey))
	if err != nil {
		return nil, err
	}
	if len(key) != keyLength {
		return nil, fmt.Errorf("number of bytes in key file (%s) is not as expected (%d)", keyFileName, keyLength)
	}
	return key, nil
}

// return the session of the request, creating a new one bound to the given user if there is none or if it belongs
// to another user
func GetOrNew(r *http.Request, userName string) *sessions.Session {
	sess, err := store.Get(r, photosCookie)
	if err != nil {
		// a cookie signed with an old key still yields a fresh session
		logger.WithError(err).Debug("discarding invalid session cookie")
	}
	if user, _ := sess.Values[SessionUser].(string); user != userName {
		for k := range sess.Values {
			delete(sess.Values, k)
		}
		sess.Values[SessionUser] = userName
	}
	return sess
}

// return the CSRF token of the user's session, issuing one if the session has none. The session is saved
// when a token is issued
func CsrfToken(w http.ResponseWriter, r *http.Request, userName string) (string, error) {
	sess := GetOrNew(r, userName)
	if token, ok := sess.Values[sessionCsrfToken].(string); ok && token != "" {
		return token, nil
	}
	token := uniuri.NewLen(csrfTokenLength)
	sess.Values[sessionCsrfToken] = token
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return token, nil
}

// returns true if the request carries the CSRF token of the user's session in the CSRF header
func ValidCsrfToken(r *http.Request, userName string) bool {
	sess, err := store.Get(r, photosCookie)
	if err != nil || sess.IsNew {
		return false
	}
	if user, _ := sess.Values[SessionUser].(string); user != userName {
		return false
	}
	token, _ := sess.Values[sessionCsrfToken].(string)
	given := r.Header.Get(CsrfTokenHeader)
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(given)) == 1
}

// initialize sessions in a temporary dir and return a cleanup function
func InitSessionForTest() func() {
	dir, err := os.MkdirTemp("", "submit_photos_session_")
	if err != nil {
		panic(err)
	}
	if err := Init(dir); err != nil {
		panic(err)
	}
	return func() {
		if err := os.RemoveAll(dir); err != nil {
			panic(err)
		}
	}
}
