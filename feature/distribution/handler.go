package distribution

import (
	"fmt"

	"stocktake/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const downloadPage = `<!DOCTYPE html>
<html>
<head><title>Scanner App</title></head>
<body>
<h1>Scanner App</h1>
%s
</body>
</html>`

// Handler handles HTTP requests for APK distribution.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the distribution routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/download")
	group.Get("/", h.HandlePage)
	group.Get("/apk", h.HandleAPK)
}

// HandlePage serves a minimal landing page for device provisioning,
// showing the published build's size and date when one exists.
// @Summary Download Page
// @Tags distribution
// @Produce html
// @Success 200 {string} string "Landing page"
// @Router /download [get]
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	body := "<p>No build published yet.</p>"
	info, err := h.service.Info(c.Context())
	if err != nil {
		l.Error("APK stat failed", zap.Error(err))
	} else if info.Available {
		body = fmt.Sprintf(
			`<p><a href="/download/apk">Download %s</a> (%.1f MB, updated %s)</p>`,
			apkObject,
			float64(info.Size)/(1024*1024),
			info.UpdatedAt.Format("2006-01-02"),
		)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fmt.Sprintf(downloadPage, body))
}

// HandleAPK streams the published scanner APK.
// @Summary Download APK
// @Tags distribution
// @Produce application/vnd.android.package-archive
// @Success 200 {file} file "APK"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /download/apk [get]
func (h *Handler) HandleAPK(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	info, err := h.service.Info(c.Context())
	if err != nil {
		l.Error("APK stat failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !info.Available {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no build published",
		})
	}

	obj, err := h.service.Open(c.Context())
	if err != nil {
		l.Error("APK open failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.android.package-archive")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, apkObject))
	return c.SendStream(obj, int(info.Size))
}
