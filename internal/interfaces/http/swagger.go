package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// SwaggerDocs devuelve el middleware de Swagger UI, o nil si el archivo
// de especificación no existe. El middleware de contrib entra en pánico
// ante un archivo ausente, así que el binario debe poder arrancar sin
// docs generados.
func SwaggerDocs(filePath, title string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	})
}
