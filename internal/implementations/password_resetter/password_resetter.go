package passwordresetter

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	c "finschool/internal/core/domain/common"
	"finschool/internal/core/domain/user"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const purpose = "password-reset"

var saltChars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// HMAC issues self-contained password reset tokens. A token is
// base64("email|ts|salt|mac") where the MAC covers the purpose tag, the
// email, the issuance timestamp, the salt and the user's current
// password hash. Binding the hash makes every outstanding token invalid
// once the password changes.
type HMAC struct {
	secretKey     []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewHMAC(secretKey string, validDuration time.Duration, now func() time.Time) *HMAC {
	return &HMAC{
		secretKey:     []byte(secretKey),
		validDuration: validDuration,
		now:           now,
	}
}

func (h *HMAC) GenerateToken(u user.User) user.PasswordResetToken {
	nowTs := h.now().Unix()
	salt := h.getRandomSalt()
	mac := h.getMac(u.Email, u.PasswordHash, nowTs, salt)
	b64 := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf("%s|%d|%s|%s", u.Email, nowTs, salt, mac)))
	return user.PasswordResetToken(b64)
}

func (h *HMAC) GetEmail(token user.PasswordResetToken) (email c.Email, ok bool) {
	parts, ok := h.splitToken(token)
	if !ok {
		return email, false
	}
	return c.Email(parts[0]), true
}

// VerifyToken checks the signature before the age, so a tampered token
// is always reported as invalid rather than expired.
func (h *HMAC) VerifyToken(token user.PasswordResetToken, u user.User) error {
	parts, ok := h.splitToken(token)
	if !ok {
		return user.ErrPasswordResetTokenInvalid
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return user.ErrPasswordResetTokenInvalid
	}
	salt := parts[2]
	mac := parts[3]
	expectedMac := h.getMac(c.Email(parts[0]), u.PasswordHash, ts, salt)
	if subtle.ConstantTimeCompare([]byte(mac), []byte(expectedMac)) != 1 {
		return user.ErrPasswordResetTokenInvalid
	}
	if c.Email(parts[0]) != u.Email {
		return user.ErrPasswordResetTokenInvalid
	}
	if time.Duration(h.now().Unix()-ts)*time.Second > h.validDuration {
		return user.ErrPasswordResetTokenExpired
	}
	return nil
}

func (h *HMAC) splitToken(token user.PasswordResetToken) ([]string, bool) {
	decodedToken, err := base64.RawURLEncoding.DecodeString(string(token))
	if err != nil {
		return nil, false
	}
	parts := strings.SplitN(string(decodedToken), "|", 4)
	if len(parts) != 4 {
		return nil, false
	}
	return parts, true
}

func (h *HMAC) getMac(email c.Email, passwordHash user.PasswordHash, ts int64, salt string) string {
	hasher := hmac.New(sha256.New, h.secretKey)
	io.WriteString(hasher, fmt.Sprintf("%s|%s|%d|%s|%s", purpose, email, ts, salt, string(passwordHash)))
	return fmt.Sprintf("%x", hasher.Sum(nil))
}

func (h *HMAC) getRandomSalt() string {
	b := make([]rune, 5)
	for i := range b {
		b[i] = saltChars[rand.Intn(len(saltChars))]
	}
	return string(b)
}
