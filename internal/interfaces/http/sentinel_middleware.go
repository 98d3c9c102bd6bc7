package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const securityHeader = "UHG-Sentinelle-AI"

// SentinelMiddleware bloquea IPs de la lista negra y marca todas las
// respuestas con la cabecera X-Security-By.
func SentinelMiddleware(bannedIPs []string) fiber.Handler {
	banned := make(map[string]struct{}, len(bannedIPs))
	for _, ip := range bannedIPs {
		banned[ip] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if _, blocked := banned[c.IP()]; blocked {
			log.Warn().Str("ip", c.IP()).Msg("sentinelle: IP bloqueada")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Sentinelle Block: IP Banned"})
		}
		err := c.Next()
		c.Set("X-Security-By", securityHeader)
		return err
	}
}
