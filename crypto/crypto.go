package crypto

import (
	"golang.org/x/crypto/argon2"
)

// Domain-separation salts. The session secret is the real input; these only
// keep the three derived keys independent of each other.
var (
	authSalt       = []byte("metrodms/session/auth")
	encryptionSalt = []byte("metrodms/session/encryption")
	csrfSalt       = []byte("metrodms/csrf")
)

func DeriveKey(secret string, salt []byte) []byte {
	// Argon2id parameters: 1 pass, 64MB memory, 4 threads, 32 bytes key
	return argon2.IDKey([]byte(secret), salt, 1, 64*1024, 4, 32)
}

// Keys holds the 32-byte keys derived from the configured session secret.
type Keys struct {
	Auth       []byte // cookie HMAC
	Encryption []byte // cookie AES
	CSRF       []byte
}

func DeriveKeys(secret string) Keys {
	return Keys{
		Auth:       DeriveKey(secret, authSalt),
		Encryption: DeriveKey(secret, encryptionSalt),
		CSRF:       DeriveKey(secret, csrfSalt),
	}
}
