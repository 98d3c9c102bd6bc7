package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt solo procesa los primeros 72 bytes de entrada; el resto se trunca en
// silencio, igual al hashear y al verificar. Una contraseña de 100 caracteres
// y su prefijo de 72 producen el mismo digest.
const maxPasswordBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword genera el digest bcrypt (salted, DefaultCost) de la contraseña.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword comprueba la contraseña contra el digest almacenado.
// La comparación interna de bcrypt es de tiempo constante.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncatePassword(password)) == nil
}
