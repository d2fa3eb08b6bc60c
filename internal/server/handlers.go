package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"validation-guide/internal/capture"
	"validation-guide/internal/catalog"
	"validation-guide/internal/helpers"
	"validation-guide/internal/presentation"
	"validation-guide/internal/services"
)

type sessionResponse struct {
	ID      string          `json:"id"`
	Widget  capture.View    `json:"widget"`
	Toggles map[string]bool `json:"toggles"`
	Error   string          `json:"error,omitempty"`
}

func (s *Server) listMethods(c *gin.Context) {
	methods := catalog.Methods()
	if value := c.Query("category"); value != "" {
		category, err := catalog.ParseCategory(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
			return
		}
		methods = catalog.FilterByCategory(methods, category)
	}
	c.JSON(http.StatusOK, gin.H{"methods": methods})
}

func (s *Server) getMethod(c *gin.Context) {
	method, ok := catalog.FindMethod(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "unknown method " + c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"method": method})
}

func (s *Server) listSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": catalog.GroupByCategory(catalog.Methods())})
}

func (s *Server) listTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": catalog.TimelineTitle, "phases": catalog.Phases()})
}

func (s *Server) listGuides(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"guides": catalog.DecisionGuides()})
}

func (s *Server) renderPage(c *gin.Context) {
	sess := currentSession(c)
	c.HTML(http.StatusOK, "page.html", presentation.BuildPage(sess.Toggles, sess.Widget.Snapshot()))
}

func (s *Server) showSession(c *gin.Context) {
	s.respond(c, http.StatusOK, currentSession(c), nil)
}

func (s *Server) toggleItem(c *gin.Context) {
	sess := currentSession(c)
	if _, err := sess.Toggles.Toggle(c.Param("id")); err != nil {
		s.respond(c, http.StatusNotFound, sess, err)
		return
	}
	s.respond(c, http.StatusOK, sess, nil)
}

func (s *Server) uploadImage(c *gin.Context) {
	sess := currentSession(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.respond(c, status, sess, err)
		return
	}

	channel, err := capture.ParseChannel(firstValue(form.Value["channel"]))
	if err != nil {
		s.respond(c, http.StatusBadRequest, sess, err)
		return
	}

	files := form.File["image"]
	if len(files) == 0 {
		s.respond(c, http.StatusBadRequest, sess, errors.New("missing image field"))
		return
	}

	sources := make([]capture.Source, 0, len(files))
	for _, fh := range files {
		src, closer, err := sourceFromFile(fh, channel)
		if err != nil {
			s.respond(c, http.StatusBadRequest, sess, err)
			return
		}
		defer closer.Close()
		sources = append(sources, src)
	}

	// A paste may carry several clipboard items; the first image wins.
	// Other channels take the first file, as a picker or drop would.
	chosen := sources[0]
	if channel == capture.ChannelPaste {
		if picked, ok := capture.FirstImage(sources); ok {
			chosen = picked
		}
	}

	if err := <-sess.Widget.AcceptImage(chosen); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, capture.ErrNotImage) {
			status = http.StatusUnsupportedMediaType
		}
		s.respond(c, status, sess, err)
		return
	}

	s.logger.Debug("image accepted",
		zap.String("session", sess.ID),
		zap.String("channel", string(channel)),
		zap.String("media_type", chosen.MediaType))
	s.respond(c, http.StatusOK, sess, nil)
}

func (s *Server) analyze(c *gin.Context) {
	sess := currentSession(c)
	s.runAnalysis(c, sess, sess.Widget.Analyze)
}

func (s *Server) retry(c *gin.Context) {
	sess := currentSession(c)
	s.runAnalysis(c, sess, sess.Widget.Retry)
}

// runAnalysis detaches from the request context: an issued analysis is never
// cancelled, even if the client goes away.
func (s *Server) runAnalysis(c *gin.Context, sess *Session, run func(context.Context) error) {
	err := run(context.WithoutCancel(c.Request.Context()))
	switch {
	case err == nil:
		s.respond(c, http.StatusOK, sess, nil)
	case errors.Is(err, capture.ErrAnalysisInFlight), errors.Is(err, capture.ErrDecoding),
		errors.Is(err, capture.ErrAlreadyAnalyzed), errors.Is(err, capture.ErrSuperseded):
		s.respond(c, http.StatusConflict, sess, err)
	case errors.Is(err, capture.ErrNoPayload), errors.Is(err, capture.ErrNothingToRetry):
		s.respond(c, http.StatusBadRequest, sess, err)
	case errors.Is(err, services.ErrAnalysisFailed):
		s.logger.Warn("analysis failed", zap.String("session", sess.ID), zap.Error(err))
		s.respond(c, http.StatusBadGateway, sess, errors.New(services.FailureMessage))
	default:
		s.respond(c, http.StatusBadGateway, sess, err)
	}
}

func (s *Server) reset(c *gin.Context) {
	sess := currentSession(c)
	sess.Widget.Reset()
	s.respond(c, http.StatusOK, sess, nil)
}

// respond answers JSON clients with the session state and sends browsers
// back to the page
func (s *Server) respond(c *gin.Context, status int, sess *Session, err error) {
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	body := sessionResponse{
		ID:      sess.ID,
		Widget:  sess.Widget.Snapshot(),
		Toggles: sess.Toggles.Snapshot(),
	}
	if err != nil {
		body.Error = err.Error()
	}
	c.JSON(status, body)
}

// sourceFromFile opens an uploaded file. A missing or generic Content-Type is
// replaced by a guess from the name and the first bytes.
func sourceFromFile(fh *multipart.FileHeader, channel capture.Channel) (capture.Source, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return capture.Source{}, nil, err
	}

	src := capture.Source{Channel: channel, Name: fh.Filename, MediaType: fh.Header.Get("Content-Type"), Body: f}
	if src.MediaType == "" || src.MediaType == "application/octet-stream" {
		head := make([]byte, 512)
		n, err := io.ReadFull(f, head)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			f.Close()
			return capture.Source{}, nil, err
		}
		head = head[:n]
		src.MediaType = helpers.DetectMediaType(fh.Filename, head)
		src.Body = io.MultiReader(bytes.NewReader(head), f)
	}
	return src, f, nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
