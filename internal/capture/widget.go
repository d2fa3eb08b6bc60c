// Package capture implements the single-image analysis widget: it accepts an
// image from a file picker, a drop or a paste, keeps a preview and a transport
// payload, and runs at most one analysis at a time.
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"validation-guide/internal/models"
)

// NotImageMessage is shown when a non-image file is offered
const NotImageMessage = "Please upload an image file."

const (
	readFailedMessage = "Could not read the image file."
	fallbackMessage   = "Analysis failed"
)

var (
	ErrNotImage         = errors.New("source is not an image")
	ErrNoPayload        = errors.New("no image to analyze")
	ErrAnalysisInFlight = errors.New("analysis already in progress")
	ErrDecoding         = errors.New("image still loading")
	ErrAlreadyAnalyzed  = errors.New("image already analyzed; reset first")
	ErrNothingToRetry   = errors.New("no failed analysis to retry")
	ErrSuperseded       = errors.New("superseded by a newer image or reset")
)

// State is the widget's position in its session state machine
type State string

const (
	StateEmpty      State = "empty"
	StatePreviewing State = "previewing"
	StateAnalyzing  State = "analyzing"
	StateResult     State = "result"
	StateError      State = "error"
)

// Analyzer classifies a base64 image payload
type Analyzer interface {
	Analyze(ctx context.Context, payload string) (*models.AnalysisResult, error)
}

// View is an immutable snapshot of the widget for rendering
type View struct {
	State      State                  `json:"state"`
	Name       string                 `json:"name,omitempty"`
	MediaType  string                 `json:"media_type,omitempty"`
	Preview    string                 `json:"preview,omitempty"`
	Result     *models.AnalysisResult `json:"result,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Decoding   bool                   `json:"decoding"`
	CanAnalyze bool                   `json:"can_analyze"`
	CanRetry   bool                   `json:"can_retry"`
}

// Widget holds one analysis session. It is safe for concurrent use.
type Widget struct {
	analyzer Analyzer

	mu         sync.Mutex
	state      State
	name       string
	mediaType  string
	preview    string
	payload    string
	result     *models.AnalysisResult
	errMsg     string
	decoding   bool
	inFlight   bool
	generation uint64
}

// NewWidget creates an empty widget backed by analyzer
func NewWidget(analyzer Analyzer) *Widget {
	return &Widget{analyzer: analyzer, state: StateEmpty}
}

// AcceptImage validates src and decodes it in the background. The returned
// channel yields exactly one value once the widget has advanced: nil on
// success, ErrNotImage for a rejected media type, ErrSuperseded when a reset or
// a newer image overtook the decode, or the read error.
func (w *Widget) AcceptImage(src Source) <-chan error {
	done := make(chan error, 1)

	if !src.IsImage() {
		w.mu.Lock()
		w.errMsg = NotImageMessage
		w.mu.Unlock()
		done <- ErrNotImage
		close(done)
		return done
	}

	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.errMsg = ""
	w.result = nil
	w.decoding = true
	if !w.inFlight {
		w.settle()
	}
	w.mu.Unlock()

	go func() {
		defer close(done)
		done <- w.decode(gen, src)
	}()
	return done
}

func (w *Widget) decode(gen uint64, src Source) error {
	var data []byte
	var err error
	if src.Body == nil {
		err = errors.New("empty image source")
	} else {
		data, err = io.ReadAll(src.Body)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation {
		return ErrSuperseded
	}
	w.decoding = false
	if err != nil {
		if !w.inFlight {
			w.settle()
		}
		w.errMsg = readFailedMessage
		return fmt.Errorf("failed to read image: %w", err)
	}

	w.name = src.Name
	w.mediaType = src.MediaType
	w.preview = DataURI(src.MediaType, data)
	w.payload = PayloadFromDataURI(w.preview)
	w.result = nil
	w.errMsg = ""
	w.state = StatePreviewing
	return nil
}

// settle puts a widget with no outstanding work back into the state its
// payload allows. The caller holds w.mu.
func (w *Widget) settle() {
	if w.payload == "" {
		w.state = StateEmpty
		return
	}
	w.state = StatePreviewing
}

// Analyze sends the stored payload to the analyzer. While a call is
// outstanding further calls return ErrAnalysisInFlight without reaching the
// analyzer, and while a new image is loading they return ErrDecoding. Once
// issued a call is never cancelled by the widget.
func (w *Widget) Analyze(ctx context.Context) error {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return ErrAnalysisInFlight
	}
	if w.decoding {
		w.mu.Unlock()
		return ErrDecoding
	}
	if w.payload == "" {
		w.mu.Unlock()
		return ErrNoPayload
	}
	if w.state == StateResult {
		w.mu.Unlock()
		return ErrAlreadyAnalyzed
	}
	w.inFlight = true
	w.state = StateAnalyzing
	w.errMsg = ""
	gen := w.generation
	payload := w.payload
	w.mu.Unlock()

	result, err := w.analyzer.Analyze(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if gen != w.generation {
		if w.state == StateAnalyzing && !w.decoding {
			w.settle()
		}
		return ErrSuperseded
	}
	if err != nil {
		w.state = StateError
		w.errMsg = userMessage(err)
		return err
	}
	w.state = StateResult
	w.result = result
	return nil
}

// Retry repeats a failed analysis with the same payload
func (w *Widget) Retry(ctx context.Context) error {
	w.mu.Lock()
	failed := w.state == StateError
	w.mu.Unlock()

	if !failed {
		return ErrNothingToRetry
	}
	return w.Analyze(ctx)
}

// Reset returns the widget to its initial empty state
func (w *Widget) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.generation++
	w.state = StateEmpty
	w.name = ""
	w.mediaType = ""
	w.preview = ""
	w.payload = ""
	w.result = nil
	w.errMsg = ""
	w.decoding = false
}

// Payload returns the base64 transport form of the current image
func (w *Widget) Payload() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.payload
}

// Snapshot returns the current view of the widget
func (w *Widget) Snapshot() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	idle := !w.inFlight && !w.decoding
	view := View{
		State:      w.state,
		Name:       w.name,
		MediaType:  w.mediaType,
		Preview:    w.preview,
		Error:      w.errMsg,
		Decoding:   w.decoding,
		CanAnalyze: idle && w.payload != "" && (w.state == StatePreviewing || w.state == StateError),
		CanRetry:   idle && w.state == StateError,
	}
	if w.result != nil {
		result := *w.result
		view.Result = &result
	}
	return view
}

func userMessage(err error) string {
	var described interface{ UserMessage() string }
	if errors.As(err, &described) {
		return described.UserMessage()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}
