package strkit

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

// MD5 returns the lowercase hex MD5 digest of s.
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// EncodeBase64 encodes s with the standard padded alphabet on a single line.
func EncodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func DecodeBase64(s string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", errors.Wrapf(err, "can not decode base64 %q", s)
	}

	return string(data), nil
}
