package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"iot-system/internal/domain"
)

// httpAPI exposes the CRUD surface under /api/processed-agent-data and the
// /api/ws notification stream.
type httpAPI struct {
	service  *service
	subs     *subscribers
	upgrader websocket.Upgrader
}

func newHTTPAPI(svc *service, subs *subscribers) *httpAPI {
	return &httpAPI{
		service: svc,
		subs:    subs,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (h *httpAPI) register(router gin.IRouter) {
	api := router.Group("/api")
	api.GET("/ws", h.ws)
	api.POST("/processed-agent-data", h.create)
	api.GET("/processed-agent-data/:id", h.read)
	api.GET("/processed-agent-data", h.readList)
	api.PUT("/processed-agent-data/:id", h.update)
	api.DELETE("/processed-agent-data/:id", h.delete)
}

// create accepts either a single ProcessedAgentData object or a JSON array
// of them, notifying websocket subscribers of whatever was persisted.
func (h *httpAPI) create(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if isJSONArray(body) {
		var list []domain.ProcessedAgentData
		if err := json.Unmarshal(body, &list); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		switch len(list) {
		case 0:
			c.Status(http.StatusOK)
		case 1:
			h.createSingle(c, list[0])
		default:
			ids, err := h.service.createList(c.Request.Context(), list)
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			locations := make([]string, len(ids))
			for i, id := range ids {
				locations[i] = recordLocation(id)
			}
			payload, err := json.Marshal(locations)
			if err != nil {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.Header("Location", string(payload))
			c.Status(http.StatusCreated)
		}
		return
	}

	var data domain.ProcessedAgentData
	if err := json.Unmarshal(body, &data); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	h.createSingle(c, data)
}

func (h *httpAPI) createSingle(c *gin.Context, data domain.ProcessedAgentData) {
	id, err := h.service.create(c.Request.Context(), data)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Location", recordLocation(id))
	c.Status(http.StatusCreated)
}

func (h *httpAPI) read(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	data, err := h.service.fetch(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if data == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *httpAPI) readList(c *gin.Context) {
	page, ok := parsePageParam(c, "page")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	size, ok := parsePageParam(c, "size")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	pagination, err := NewPagination(page, size)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	list, err := h.service.fetchList(c.Request.Context(), pagination)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *httpAPI) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var data domain.ProcessedAgentData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.service.update(c.Request.Context(), id, data)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if !updated {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *httpAPI) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.delete(c.Request.Context(), id); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// ws upgrades the connection and registers it as a subscriber until the
// client disconnects.
func (h *httpAPI) ws(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	id := h.subs.add(conn)
	defer h.subs.remove(id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			closeWithReason(conn, err)
			return
		}
	}
}

// closeWithReason maps a ReadMessage failure to the close code the
// protocol calls for: an oversize frame gets 1009, an I/O failure
// (network error, EOF, reset connection) gets 1011, and anything else,
// such as a malformed frame, gets 1002.
// A peer that already sent its own close frame needs no response.
func closeWithReason(conn *websocket.Conn, err error) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return
	}

	code := websocket.CloseProtocolError
	switch {
	case errors.Is(err, websocket.ErrReadLimit):
		code = websocket.CloseMessageTooBig
	case isIOError(err):
		code = websocket.CloseInternalServerErr
	}

	deadline := time.Now().Add(time.Second)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, ""), deadline)
}

func isIOError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// parsePageParam parses an optional page/size query parameter. An
// absent parameter yields 0, which NewPagination treats as "use the
// default"; an explicit zero is distinct from absent and must be
// rejected rather than silently defaulted to it.
func parsePageParam(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value == 0 {
		return 0, false
	}
	return value, true
}

func parseID(c *gin.Context) (int32, bool) {
	value, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return int32(value), true
}

func recordLocation(id int32) string {
	return "/api/processed-agent-data/" + strconv.Itoa(int(id))
}

func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '['
}
