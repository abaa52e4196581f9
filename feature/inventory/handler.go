package inventory

import (
	"errors"
	"fmt"

	"stocktake/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes. The literal /active route
// is registered before the parameterized /:id routes so it is matched first.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/inventories", h.HandleList)

	group := app.Group("/inventory")
	group.Get("/active", h.HandleActive)
	group.Post("/", h.HandleCreate)
	group.Put("/:id/start", h.HandleStart)
	group.Put("/:id/close", h.HandleClose)
	group.Delete("/:id", h.HandleDelete)
	group.Get("/:id/stock", h.HandleStockLines)
	group.Delete("/:id/stock/:lineID", h.HandleDeleteStockLine)
	group.Post("/:id/stock/batch-delete", h.HandleBatchDeleteStock)
	group.Post("/:id/sync", h.HandleSync)
	group.Get("/:id/readings", h.HandleReadings)
	group.Delete("/:id/readings/:readingID", h.HandleDeleteReading)
	group.Get("/:id/report", h.HandleReport)
	group.Get("/:id/report/export", h.HandleExport)
	group.Get("/:id/progress", h.HandleProgress)
}

func sessionID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	return uint(id), nil
}

// actor pulls the authenticated username from the request context.
func actor(c *fiber.Ctx) string {
	if u, ok := c.Locals("user").(string); ok {
		return u
	}
	return ""
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "session not found",
		})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleList returns all sessions with their baseline totals.
// @Summary List Sessions
// @Tags inventory
// @Produce json
// @Success 200 {array} models.SessionSummary "Sessions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventories [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sessions, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, l, "Session list failed", err)
	}
	return c.JSON(sessions)
}

// HandleActive returns the currently active session, if any.
// @Summary Get Active Session
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{} "Active session or active=false"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventory/active [get]
func (h *Handler) HandleActive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	session, err := h.service.Active(c.Context())
	if err != nil {
		return h.fail(c, l, "Active session lookup failed", err)
	}
	if session == nil {
		return c.JSON(fiber.Map{"active": false})
	}
	return c.JSON(fiber.Map{"active": true, "session": session})
}

type createRequest struct {
	StoreCode string `json:"store_code"`
	StoreName string `json:"store_name"`
}

// HandleCreate opens a new session and freezes the store's baseline.
// @Summary Create Session
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body inventory.createRequest true "Store to count"
// @Success 200 {object} map[string]interface{} "Created session"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventory [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.StoreCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "store_code is required",
		})
	}

	session, lines, err := h.service.Create(c.Context(), req.StoreCode, req.StoreName, actor(c))
	if err != nil {
		return h.fail(c, l, "Session create failed", err)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"session_id":   session.ID,
		"lines_loaded": lines,
	})
}

// HandleStart promotes a session to active, demoting any other.
// @Summary Start Session
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]interface{} "Result"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/inventory/{id}/start [put]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.service.Start(c.Context(), id, actor(c)); err != nil {
		return h.fail(c, l, "Session start failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "session_id": id})
}

// HandleClose moves a session to closed.
// @Summary Close Session
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]interface{} "Result"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/inventory/{id}/close [put]
func (h *Handler) HandleClose(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.service.Close(c.Context(), id, actor(c)); err != nil {
		return h.fail(c, l, "Session close failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "session_id": id})
}

// HandleDelete removes a session and all of its data.
// @Summary Delete Session
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]interface{} "Result"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/inventory/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id, actor(c)); err != nil {
		return h.fail(c, l, "Session delete failed", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleStockLines returns a session's frozen baseline.
// @Summary Get Stock Lines
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {array} models.StockLine "Baseline lines"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventory/{id}/stock [get]
func (h *Handler) HandleStockLines(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	lines, err := h.service.StockLines(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Stock line list failed", err)
	}
	return c.JSON(lines)
}

// HandleDeleteStockLine removes one baseline line.
// @Summary Delete Stock Line
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Param lineID path int true "Stock line ID"
// @Success 200 {object} map[string]interface{} "Result"
// @Router /api/inventory/{id}/stock/{lineID} [delete]
func (h *Handler) HandleDeleteStockLine(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	lineID, err := c.ParamsInt("lineID")
	if err != nil || lineID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid line id")
	}
	if err := h.service.DeleteStockLine(c.Context(), id, uint(lineID)); err != nil {
		return h.fail(c, l, "Stock line delete failed", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

type batchDeleteRequest struct {
	LineIDs []uint `json:"line_ids"`
}

// HandleBatchDeleteStock removes a batch of baseline lines.
// @Summary Batch Delete Stock Lines
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body inventory.batchDeleteRequest true "Line IDs"
// @Success 200 {object} map[string]interface{} "Result"
// @Router /api/inventory/{id}/stock/batch-delete [post]
func (h *Handler) HandleBatchDeleteStock(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req batchDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	deleted, err := h.service.DeleteStockLines(c.Context(), id, req.LineIDs)
	if err != nil {
		return h.fail(c, l, "Stock line batch delete failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

type syncRequest struct {
	Device   string           `json:"device"`
	Readings []ReadingInput   `json:"readings"`
	Logs     []DeviceLogInput `json:"logs"`
}

// HandleSync replaces a device's readings with the uploaded batch.
// @Summary Sync Device Readings
// @Description Replaces the device's entire contribution to the session. Safe to retry.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body inventory.syncRequest true "Sync batch"
// @Success 200 {object} map[string]interface{} "Sync result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventory/{id}/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	var req syncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Device == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "device is required",
		})
	}

	result, err := h.service.Sync(c.Context(), id, req.Device, req.Readings, req.Logs)
	if err != nil {
		return h.fail(c, l, "Sync failed", err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"accepted": result.Accepted,
		"scanner":  result.Scanner,
		"manual":   result.Manual,
	})
}

// HandleReadings lists a session's readings, optionally for one device.
// @Summary List Readings
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Param device query string false "Device filter"
// @Success 200 {array} models.Reading "Readings"
// @Router /api/inventory/{id}/readings [get]
func (h *Handler) HandleReadings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	readings, err := h.service.Readings(c.Context(), id, c.Query("device"))
	if err != nil {
		return h.fail(c, l, "Reading list failed", err)
	}
	return c.JSON(readings)
}

// HandleDeleteReading removes a single reading.
// @Summary Delete Reading
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Param readingID path int true "Reading ID"
// @Success 200 {object} map[string]interface{} "Result"
// @Router /api/inventory/{id}/readings/{readingID} [delete]
func (h *Handler) HandleDeleteReading(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	readingID, err := c.ParamsInt("readingID")
	if err != nil || readingID < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid reading id")
	}
	if err := h.service.DeleteReading(c.Context(), id, uint(readingID), actor(c)); err != nil {
		return h.fail(c, l, "Reading delete failed", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleReport returns the full reconciliation report.
// @Summary Get Reconciliation Report
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {array} reconcile.Row "Report rows"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/inventory/{id}/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	rows, err := h.service.Report(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Report failed", err)
	}
	return c.JSON(rows)
}

// HandleExport downloads the reconciliation report as XLSX.
// @Summary Export Reconciliation Report
// @Tags inventory
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Session ID"
// @Success 200 {file} file "Workbook"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/inventory/{id}/report/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	buf, err := h.service.Export(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Report export failed", err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="inventory-%d.xlsx"`, id))
	return c.Send(buf.Bytes())
}

// HandleProgress returns the lightweight progress view.
// @Summary Get Session Progress
// @Tags inventory
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} reconcile.Progress "Progress"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/inventory/{id}/progress [get]
func (h *Handler) HandleProgress(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionID(c)
	if err != nil {
		return err
	}
	progress, err := h.service.Progress(c.Context(), id)
	if err != nil {
		return h.fail(c, l, "Progress failed", err)
	}
	return c.JSON(progress)
}
