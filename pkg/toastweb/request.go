package toastweb

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastui"
)

const maxBodySize = 64 << 10

// showRequest is the wire form of toast.Options.
type showRequest struct {
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Type     string          `json:"type"`
	Closable *bool           `json:"closable"`
	Duration json.RawMessage `json:"duration"`
	Position string          `json:"position"`
	Action   *toastui.Action `json:"action"`
}

// options converts the request. A missing duration takes the provider
// default; an explicit null means the toast never auto-dismisses.
func (req showRequest) options() (toast.Options, error) {
	opts := toast.Options{
		Title:    req.Title,
		Message:  req.Message,
		Type:     toast.Type(req.Type),
		Closable: req.Closable,
		Position: toast.Position(req.Position),
	}
	if req.Action != nil {
		opts.Action = *req.Action
	}
	if len(req.Duration) > 0 {
		var d toast.Duration
		if err := json.Unmarshal(req.Duration, &d); err != nil {
			var s string
			if json.Unmarshal(req.Duration, &s) != nil {
				return toast.Options{}, errors.Join(ErrInvalidDuration, err)
			}
			if d, err = toast.ParseDuration(s); err != nil {
				return toast.Options{}, errors.Join(ErrInvalidDuration, err)
			}
		}
		opts.Duration = &d
	}
	return opts, nil
}

// decodeShowRequest reads JSON bodies (including datastar signal payloads)
// and url-encoded or multipart forms.
func decodeShowRequest(r *http.Request) (toast.Options, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return decodeForm(r)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return toast.Options{}, errors.Join(ErrInvalidBody, err)
	}
	var req showRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&req); err != nil {
		return toast.Options{}, errors.Join(ErrInvalidBody, err)
	}
	return req.options()
}

func decodeForm(r *http.Request) (toast.Options, error) {
	if err := r.ParseMultipartForm(maxBodySize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return toast.Options{}, errors.Join(ErrInvalidBody, err)
	}

	opts := toast.Options{
		Title:    r.PostForm.Get("title"),
		Message:  r.PostForm.Get("message"),
		Type:     toast.Type(r.PostForm.Get("type")),
		Position: toast.Position(r.PostForm.Get("position")),
	}
	if v := r.PostForm.Get("closable"); v != "" {
		closable, err := strconv.ParseBool(v)
		if err != nil {
			return toast.Options{}, errors.Join(ErrInvalidBody, err)
		}
		opts.Closable = &closable
	}
	if v := r.PostForm.Get("duration"); v != "" {
		d, err := toast.ParseDuration(v)
		if err != nil {
			return toast.Options{}, errors.Join(ErrInvalidDuration, err)
		}
		opts.Duration = &d
	}
	if label := r.PostForm.Get("action_label"); label != "" {
		opts.Action = toastui.Action{Label: label, URL: r.PostForm.Get("action_url")}
	}
	return opts, nil
}
