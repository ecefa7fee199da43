package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params are the argon2id cost settings stored inside every hash.
type Argon2Params struct {
	Memory     uint32
	Iterations uint32
	Threads    uint8
	SaltLen    uint32
	KeyLen     uint32
}

var DefaultArgon2Params = Argon2Params{
	Memory:     64 * 1024,
	Iterations: 1,
	Threads:    4,
	SaltLen:    16,
	KeyLen:     32,
}

var (
	ErrInvalidHash         = errors.New("formato de hash de contraseña no válido")
	ErrIncompatibleVersion = errors.New("versión de argon2 incompatible")
	ErrEmptyPassword       = errors.New("la contraseña no puede estar vacía")
)

type decodedHash struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

// HashPassword encodes password with the default parameters as
// $argon2id$v=19$m=..,t=..,p=..$salt$key.
func HashPassword(password string) (string, error) {
	return HashPasswordWith(password, DefaultArgon2Params)
}

func HashPasswordWith(password string, params Argon2Params) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Threads, params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.Memory, params.Iterations, params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword recomputes the key with the parameters stored in the hash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	decoded, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	p := decoded.params
	key := argon2.IDKey([]byte(password), decoded.salt, p.Iterations, p.Memory, p.Threads, p.KeyLen)
	return subtle.ConstantTimeCompare(decoded.key, key) == 1, nil
}

// NeedsRehash reports whether the hash was produced with weaker settings than
// params.
func NeedsRehash(encodedHash string, params Argon2Params) bool {
	decoded, err := decodeHash(encodedHash)
	if err != nil {
		return true
	}
	p := decoded.params
	return p.Memory < params.Memory || p.Iterations < params.Iterations || p.KeyLen < params.KeyLen
}

func decodeHash(encodedHash string) (*decodedHash, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, ErrInvalidHash
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return nil, ErrInvalidHash
	}
	if v, err := strconv.Atoi(version); err != nil {
		return nil, fmt.Errorf("read version: %w", err)
	} else if v != argon2.Version {
		return nil, ErrIncompatibleVersion
	}

	var params Argon2Params
	for _, field := range strings.Split(parts[3], ",") {
		name, value, ok := strings.Cut(field, "=")
		if !ok {
			return nil, ErrInvalidHash
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("read parameter %s: %w", name, err)
		}
		switch name {
		case "m":
			params.Memory = uint32(n)
		case "t":
			params.Iterations = uint32(n)
		case "p":
			if n == 0 || n > 255 {
				return nil, ErrInvalidHash
			}
			params.Threads = uint8(n)
		default:
			return nil, ErrInvalidHash
		}
	}
	if params.Memory == 0 || params.Iterations == 0 || params.Threads == 0 {
		return nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("decode salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(key) == 0 {
		return nil, ErrInvalidHash
	}
	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(key))

	return &decodedHash{params: params, salt: salt, key: key}, nil
}
