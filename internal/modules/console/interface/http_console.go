package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	authusecase "condoYaAdmin/internal/modules/auth/application/usecase"
	authtransport "condoYaAdmin/internal/modules/auth/interface"
	"condoYaAdmin/internal/modules/console/application/port"
	"condoYaAdmin/internal/modules/console/application/usecase"
	"condoYaAdmin/internal/modules/console/domain"
	"condoYaAdmin/internal/shared/httputil"
)

// ConsoleHandler serves every CRUD screen plus the usage report. All handlers
// run behind the session middleware; backend calls go through the session
// guard so an expired access token is refreshed transparently.
type ConsoleHandler struct {
	sessions *authtransport.SessionManager
	guard    *authusecase.SessionGuard
	browse   *usecase.BrowseUseCase
	mutate   *usecase.MutateUseCase
	report   *usecase.UsageReportUseCase
	errors   *httputil.ErrorMapper
}

func NewConsoleHandler(
	sessions *authtransport.SessionManager,
	guard *authusecase.SessionGuard,
	browse *usecase.BrowseUseCase,
	mutate *usecase.MutateUseCase,
	report *usecase.UsageReportUseCase,
) *ConsoleHandler {
	mapper := httputil.NewErrorMapper().
		WithMapping(port.ErrForbidden, http.StatusForbidden, "you do not have permission for this screen").
		WithMapping(port.ErrNotFound, http.StatusNotFound, "the record no longer exists").
		WithMapping(port.ErrUnsupported, http.StatusNotFound, "unknown screen").
		WithDefault(http.StatusBadGateway, "the backend is not reachable, showing nothing")

	return &ConsoleHandler{
		sessions: sessions,
		guard:    guard,
		browse:   browse,
		mutate:   mutate,
		report:   report,
		errors:   mapper,
	}
}

func (h *ConsoleHandler) Register(e *echo.Echo) {
	secured := e.Group("", h.sessions.RequireAuth)
	secured.GET("/", h.dashboard)
	secured.GET("/reports/usage", h.usageReport)
	secured.GET("/:entity", h.list)
	secured.GET("/:entity/new", h.newForm)
	secured.POST("/:entity", h.create)
	secured.GET("/:entity/:id/edit", h.editForm)
	secured.POST("/:entity/:id", h.update)
	secured.GET("/:entity/:id/delete", h.confirmDelete)
	secured.POST("/:entity/:id/delete", h.delete)
}

// callBackend runs call through the session guard and persists the refreshed
// token pair back into the cookie. An expired session falls back to the login
// screen.
func (h *ConsoleHandler) callBackend(c echo.Context, call func(ctx context.Context, token string) error) error {
	session, ok := authtransport.SessionFromContext(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	pair, err := h.guard.Do(c.Request().Context(), session.Tokens, call)
	if pair != session.Tokens {
		session.Tokens = pair
		if saveErr := h.sessions.Save(c, session); saveErr != nil {
			slog.Warn("session save after refresh failed", slog.Any("error", saveErr))
		}
	}
	if errors.Is(err, authusecase.ErrSessionExpired) || errors.Is(err, port.ErrUnauthorized) {
		if clearErr := h.sessions.Clear(c); clearErr != nil {
			slog.Warn("session clear failed", slog.Any("error", clearErr))
		}
		return c.Redirect(http.StatusFound, "/login")
	}
	return err
}

func (h *ConsoleHandler) viewData(c echo.Context, title string) map[string]any {
	data := map[string]any{"Title": title}
	if session, ok := authtransport.SessionFromContext(c); ok {
		data["DisplayName"] = session.DisplayName
	}
	return data
}

func (h *ConsoleHandler) dashboard(c echo.Context) error {
	data := h.viewData(c, "Dashboard")
	data["Entities"] = entityDescriptors
	return c.Render(http.StatusOK, "dashboard", data)
}

func (h *ConsoleHandler) list(c echo.Context) error {
	descriptor, ok := lookupDescriptor(c.Param("entity"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown screen")
	}

	query := domain.FromURLValues(c.QueryParams())
	var page domain.TablePage
	err := h.callBackend(c, func(ctx context.Context, token string) error {
		var listErr error
		page, listErr = h.browse.ListEntity(ctx, token, descriptor.Key, query)
		return listErr
	})
	if c.Response().Committed {
		return err
	}
	for i, row := range page.Rows {
		page.Rows[i] = descriptor.present(row)
	}

	data := h.viewData(c, descriptor.Title)
	data["Descriptor"] = descriptor
	data["Page"] = page
	data["Query"] = page.Query
	if err != nil {
		info := h.errors.Map(err)
		data["Message"] = info.Message
		data["Query"] = query
		return c.Render(info.Status, "list", data)
	}
	return c.Render(http.StatusOK, "list", data)
}

func (h *ConsoleHandler) newForm(c echo.Context) error {
	descriptor, ok := lookupDescriptor(c.Param("entity"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown screen")
	}
	data := h.viewData(c, "New "+descriptor.Singular)
	data["Descriptor"] = descriptor
	data["Row"] = domain.Row{}
	data["Action"] = "/" + descriptor.Key
	return c.Render(http.StatusOK, "form", data)
}

func (h *ConsoleHandler) create(c echo.Context) error {
	descriptor, ok := lookupDescriptor(c.Param("entity"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown screen")
	}

	payload, fieldErrors, err := descriptor.Parse(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read the form")
	}
	if fieldErrors != nil {
		return h.renderFormErrors(c, descriptor, "/"+descriptor.Key, "New "+descriptor.Singular, payloadAsRow(c), fieldErrors, "")
	}

	err = h.callBackend(c, func(ctx context.Context, token string) error {
		_, createErr := h.mutate.CreateEntity(ctx, token, descriptor.Key, payload)
		return createErr
	})
	if c.Response().Committed {
		return err
	}
	if err != nil {
		return h.renderMutationError(c, descriptor, "/"+descriptor.Key, "New "+descriptor.Singular, domain.Row(payload), err)
	}
	return c.Redirect(http.StatusSeeOther, "/"+descriptor.Key)
}

func (h *ConsoleHandler) editForm(c echo.Context) error {
	descriptor, ok := lookupDescriptor(c.Param("entity"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown screen")
	}
	id := c.Param("id")

	var row domain.Row
	err := h.callBackend(c, func(ctx context.Context, token string) error {
		var getErr error
		row, getErr = h.browse.GetEntity(ctx, token, descriptor.Key, id)
		return getErr
	})
	if c.Response().Committed {
		return err
	}
	if err != nil {
		info := h.errors.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}

	data := h.viewData(c, "Edit "+descriptor.Singular)
	data["Descriptor"] = descriptor
	data["Row"] = descriptor.present(row)
	data["Action"] = "/" + descriptor.Key + "/" + id
	return c.Render(http.StatusOK, "form", data)
}

func (h *ConsoleHandler) update(c echo.Context) error {
	descriptor, ok := lookupDescriptor(c.Param("entity"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown screen")
	}
	id := c.Param("id")
	action := "/" + descriptor.Key + "/" + id

	payload, fieldErrors, err := descriptor.Parse(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read the form")
	}
	if fieldErrors != nil {
		return h.renderFormErrors(c, descriptor, action, "Edit "+descriptor.Singular, payloadAsRow(c), fieldErrors, "")
	}

	err = h.callBackend(c, func(ctx context.Context, token string) error {
		_, updateErr := h.mutate.UpdateEntity(ctx, token, descriptor.Key, id, payload)
		return updateErr
	})
	if c.Response().Committed {
		return err
	}
	if err != nil {
		return h.renderMutationError(c, descriptor, action, "Edit "+descriptor.Singular, domain.Row(payload), err)
	}
	return c.Redirect(http.StatusSeeOther, "/"+descriptor.Key)
}

func (h *ConsoleHandler) confirmDelete(c echo.Context) error {
	descriptor, ok := lookupDescriptor(c.Param("entity"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown screen")
	}
	id := c.Param("id")

	var row domain.Row
	err := h.callBackend(c, func(ctx context.Context, token string) error {
		var getErr error
		row, getErr = h.browse.GetEntity(ctx, token, descriptor.Key, id)
		return getErr
	})
	if c.Response().Committed {
		return err
	}
	if err != nil {
		info := h.errors.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}

	data := h.viewData(c, "Delete "+descriptor.Singular)
	data["Descriptor"] = descriptor
	data["Row"] = descriptor.present(row)
	data["Action"] = "/" + descriptor.Key + "/" + id + "/delete"
	return c.Render(http.StatusOK, "confirm_delete", data)
}

func (h *ConsoleHandler) delete(c echo.Context) error {
	descriptor, ok := lookupDescriptor(c.Param("entity"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown screen")
	}
	id := c.Param("id")

	err := h.callBackend(c, func(ctx context.Context, token string) error {
		return h.mutate.DeleteEntity(ctx, token, descriptor.Key, id)
	})
	if c.Response().Committed {
		return err
	}
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		info := h.errors.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	return c.Redirect(http.StatusSeeOther, "/"+descriptor.Key)
}

func (h *ConsoleHandler) usageReport(c echo.Context) error {
	var report domain.UsageReport
	err := h.callBackend(c, func(ctx context.Context, token string) error {
		var reportErr error
		report, reportErr = h.report.Execute(ctx, token)
		return reportErr
	})
	if c.Response().Committed {
		return err
	}

	data := h.viewData(c, "Usage report")
	if err != nil {
		info := h.errors.Map(err)
		data["Message"] = info.Message
		return c.Render(info.Status, "report", data)
	}
	data["Report"] = report
	return c.Render(http.StatusOK, "report", data)
}

func (h *ConsoleHandler) renderMutationError(c echo.Context, descriptor EntityDescriptor, action, title string, row domain.Row, err error) error {
	if fields := port.FieldErrors(err); fields != nil {
		return h.renderFormErrors(c, descriptor, action, title, row, fields, "")
	}
	info := h.errors.Map(err)
	return h.renderFormErrors(c, descriptor, action, title, row, nil, info.Message)
}

func (h *ConsoleHandler) renderFormErrors(c echo.Context, descriptor EntityDescriptor, action, title string, row domain.Row, fieldErrors map[string]string, message string) error {
	data := h.viewData(c, title)
	data["Descriptor"] = descriptor
	data["Row"] = row
	data["Action"] = action
	if fieldErrors != nil {
		data["Errors"] = fieldErrors
	}
	if message != "" {
		data["Message"] = message
	}
	return c.Render(http.StatusBadRequest, "form", data)
}

// payloadAsRow refills the form with whatever the browser submitted, so a
// validation round trip never loses input.
func payloadAsRow(c echo.Context) domain.Row {
	values, err := c.FormParams()
	if err != nil {
		return domain.Row{}
	}
	row := make(domain.Row, len(values))
	for key := range values {
		row[key] = values.Get(key)
	}
	return row
}
