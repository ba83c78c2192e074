package gallery

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastui"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

const styles = `
body{font-family:system-ui,sans-serif;margin:2rem auto;max-width:60rem;padding:0 1rem}
.example{border:1px solid #ddd;border-radius:.5rem;margin:1rem 0;padding:1rem}
.example pre{background:#f6f8fa;overflow:auto;padding:.75rem}
.toast-region{display:flex;flex-direction:column;gap:.5rem;position:fixed;z-index:50;width:20rem}
.toast-region--top-left{top:1rem;left:1rem}
.toast-region--top-center{top:1rem;left:50%;transform:translateX(-50%)}
.toast-region--top-right{top:1rem;right:1rem}
.toast-region--bottom-left{bottom:1rem;left:1rem;flex-direction:column-reverse}
.toast-region--bottom-center{bottom:1rem;left:50%;transform:translateX(-50%);flex-direction:column-reverse}
.toast-region--bottom-right{bottom:1rem;right:1rem;flex-direction:column-reverse}
.toast{background:#fff;border-left:4px solid #3b82f6;box-shadow:0 2px 8px rgba(0,0,0,.15);padding:.75rem 2rem .75rem .75rem;position:relative}
.toast--success{border-color:#16a34a}.toast--warning{border-color:#d97706}.toast--error{border-color:#dc2626}
.toast__message{margin:.25rem 0 0}
.toast__close{background:none;border:0;cursor:pointer;font-size:1.25rem;position:absolute;right:.5rem;top:.25rem}
`

// Page renders the gallery with the current toasts. The toast regions open
// the SSE stream under toastBase and stay in sync from then on.
func Page(c Catalog, snap toast.Snapshot, basePath, toastBase string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>Toast gallery</title>`)
		fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, datastarScript)
		fmt.Fprintf(&b, `<style>%s</style></head><body>`, styles)
		b.WriteString(`<h1>Toast gallery</h1>`)
		fmt.Fprintf(&b, `<p><button type="button" data-on:click="@delete('%s')">Clear all</button></p>`,
			templ.EscapeString(toastBase))

		for _, e := range c {
			fmt.Fprintf(&b, `<section class="example" id="example-%s">`, templ.EscapeString(e.Slug))
			fmt.Fprintf(&b, `<h2>%s</h2><p>%s</p>`, templ.EscapeString(e.Name), templ.EscapeString(e.Description))
			fmt.Fprintf(&b, `<button type="button" data-on:click="@post('%s/examples/%s')">Show</button>`,
				templ.EscapeString(basePath), templ.EscapeString(e.Slug))
			fmt.Fprintf(&b, `<pre><code class="language-go">%s</code></pre>`, templ.EscapeString(strings.TrimRight(e.Code, "\n")))
			b.WriteString(`</section>`)
		}

		fmt.Fprintf(&b, `<div data-init="@get('%s/stream')">`, templ.EscapeString(toastBase))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := toastui.Regions(snap, toastui.WithBasePath(toastBase)).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div></body></html>`)
		return err
	})
}
