package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jmcalvo/puntoventa-api/internal/interfaces/http"
)

func TestSwaggerDocs_ArchivoAusente_DevuelveNil(t *testing.T) {
	// Sin archivo generado el middleware no se registra y la app arranca
	// igual, en lugar de entrar en pánico.
	mw := apphttp.SwaggerDocs(filepath.Join(t.TempDir(), "swagger.json"), "PuntoVenta API")
	assert.Nil(t, mw)
}

func TestSwaggerDocs_ArchivoPresente_RegistraUI(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "swagger.json")
	spec := []byte(`{"swagger":"2.0","info":{"title":"PuntoVenta API","version":"1.0"},"paths":{}}`)
	require.NoError(t, os.WriteFile(fp, spec, 0o644))

	mw := apphttp.SwaggerDocs(fp, "PuntoVenta API")
	require.NotNil(t, mw)

	app := fiber.New()
	app.Use(mw)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// El middleware deja pasar el resto de las rutas.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
