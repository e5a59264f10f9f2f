package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt only looks at the first 72 bytes of the input; truncate explicitly
// so hashing never errors on long passwords.
const maxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	p := []byte(password)
	if len(p) > maxPasswordBytes {
		p = p[:maxPasswordBytes]
	}

	hashed, err := bcrypt.GenerateFromPassword(p, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashedPassword string) bool {
	p := []byte(password)
	if len(p) > maxPasswordBytes {
		p = p[:maxPasswordBytes]
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), p) == nil
}
