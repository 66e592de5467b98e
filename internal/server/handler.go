package server

import (
	"errors"

	"space/explorer/internal/domain"
	"space/explorer/internal/page"
	"space/explorer/internal/service"
	"space/explorer/internal/view"

	"github.com/gofiber/fiber/v2"
)

const (
	localSession = "session"
	localBoard   = "board"
)

type Handler struct {
	svc      *service.Service
	registry *page.Registry
}

func NewHandler(svc *service.Service, registry *page.Registry) *Handler {
	return &Handler{svc: svc, registry: registry}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", h.health)

	app.Get("/", h.openSession, h.dashboard)

	api := app.Group("/api", h.requireSession)
	api.Post("/load/:category", h.load)
	api.Post("/apod/language", h.toggleLanguage)
	api.Get("/images/search", h.search)
	api.Post("/images/category/:name", h.imagesByCategory)
	api.Post("/images/asset/*", h.assetDetails)
	api.Get("/regions/:id", h.region)
}

// openSession attaches the visitor's board, opening a new session when the
// cookie is missing or stale. Only the dashboard opens sessions.
func (h *Handler) openSession(c *fiber.Ctx) error {
	id, board := h.registry.GetOrCreate(c.Cookies(SessionCookie))
	if id != c.Cookies(SessionCookie) {
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	c.Locals(localSession, id)
	c.Locals(localBoard, board)
	return c.Next()
}

// requireSession rejects API calls that do not carry a live session cookie.
func (h *Handler) requireSession(c *fiber.Ctx) error {
	id := c.Cookies(SessionCookie)
	board, ok := h.registry.Get(id)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "no dashboard session, open / first")
	}
	c.Locals(localSession, id)
	c.Locals(localBoard, board)
	return c.Next()
}

func sessionOf(c *fiber.Ctx) (service.Session, *page.Board) {
	board := c.Locals(localBoard).(*page.Board)
	return service.Session{ID: c.Locals(localSession).(string), Target: board}, board
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// dashboard renders the visitor's board. A board that has never shown a
// picture of the day loads one first, as the page does on open.
func (h *Handler) dashboard(c *fiber.Ctx) error {
	sess, board := sessionOf(c)

	st, err := board.Region(domain.CategoryAPOD.ResultsRegion())
	if err != nil {
		return err
	}
	if st.Content == "" {
		h.svc.LoadCurrentAPOD(c.UserContext(), sess)
	}

	c.Type("html", "utf-8")
	return c.SendString(view.Render(view.Page(board.Snapshot(), h.svc.Translator())))
}

func (h *Handler) load(c *fiber.Ctx) error {
	sess, board := sessionOf(c)
	ctx := c.UserContext()

	var outcome domain.LoadOutcome
	switch c.Params("category") {
	case "all":
		return c.JSON(h.svc.LoadAll(ctx, sess))
	case "apod":
		outcome = h.svc.LoadCurrentAPOD(ctx, sess)
	case "apod-multiple":
		outcome = h.svc.LoadMultipleAPOD(ctx, sess)
	case "asteroids":
		outcome = h.svc.LoadAsteroids(ctx, sess)
	case "mars":
		outcome = h.svc.LoadMarsWeather(ctx, sess)
	case "epic":
		outcome = h.svc.LoadEPIC(ctx, sess)
	case "rover":
		outcome = h.svc.LoadRoverPhotos(ctx, sess)
	case "images":
		outcome = h.svc.LoadImageCategories(ctx, sess)
	case "gallery":
		outcome = h.svc.LoadGallery(ctx, sess)
	case "stats":
		outcome = h.svc.LoadStats(ctx, sess)
	default:
		return fiber.NewError(fiber.StatusNotFound, "unknown category "+c.Params("category"))
	}
	return sendResults(c, board, outcome)
}

func (h *Handler) toggleLanguage(c *fiber.Ctx) error {
	sess, board := sessionOf(c)

	lang, outcome, err := h.svc.ToggleAPODLanguage(c.UserContext(), sess)
	if err != nil {
		return err
	}
	c.Set("X-APOD-Language", lang.String())
	return sendResults(c, board, outcome)
}

func (h *Handler) search(c *fiber.Ctx) error {
	sess, board := sessionOf(c)
	return sendResults(c, board, h.svc.SearchImages(c.UserContext(), sess, c.Query("q")))
}

func (h *Handler) imagesByCategory(c *fiber.Ctx) error {
	sess, board := sessionOf(c)
	return sendResults(c, board, h.svc.LoadImagesByCategory(c.UserContext(), sess, c.Params("name")))
}

func (h *Handler) assetDetails(c *fiber.Ctx) error {
	sess, board := sessionOf(c)
	return sendResults(c, board, h.svc.LoadAssetDetails(c.UserContext(), sess, c.Params("*")))
}

type regionResponse struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Content string `json:"content"`
	Text    string `json:"text"`
}

func (h *Handler) region(c *fiber.Ctx) error {
	_, board := sessionOf(c)
	id := c.Params("id")

	st, err := board.Region(id)
	if errors.Is(err, page.ErrUnknownRegion) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	text, err := board.Text(id)
	if err != nil {
		return err
	}
	return c.JSON(regionResponse{ID: st.ID, Visible: st.Visible, Content: st.Content, Text: text})
}

// sendResults answers with the category's results markup. A failed load is
// still a 200: the error box is the rendered state.
func sendResults(c *fiber.Ctx, board *page.Board, outcome domain.LoadOutcome) error {
	st, err := board.Region(outcome.Category.ResultsRegion())
	if err != nil {
		return err
	}
	c.Set("X-Load-Status", string(outcome.Status))
	c.Type("html", "utf-8")
	return c.SendString(st.Content)
}
