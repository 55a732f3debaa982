package pages

import (
	"fmt"
	"html/template"
	"io"
)

var overlayTemplate = template.Must(template.New("overlay").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Doc.Title}}</title>
    <style>
        body {
            margin: 0;
            font-family: Arial, sans-serif;
        }
        .overlay {
            position: fixed;
            inset: 0;
            overflow-y: auto;
            background: #ffffff;
            z-index: 50;
        }
        .overlay-header {
            position: sticky;
            top: 0;
            display: flex;
            align-items: center;
            justify-content: space-between;
            padding: 16px 20px;
            background: #ffffff;
            border-bottom: 1px solid #e5e7eb;
        }
        .overlay-header h1 {
            margin: 0;
            font-size: 1.5rem;
        }
        .close {
            border: none;
            background: transparent;
            font-size: 1.5rem;
            cursor: pointer;
        }
        .content {
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            line-height: 1.6;
        }
        .content h2 {
            font-size: 1.15rem;
            margin: 24px 0 8px;
        }
        .updated {
            color: #6b7280;
            font-size: 0.875rem;
            margin-top: 32px;
        }
    </style>
</head>
<body>
<div class="overlay" role="dialog" aria-modal="true" aria-labelledby="policy-title">
    <header class="overlay-header">
        <h1 id="policy-title">{{.Doc.Title}}</h1>
        <form method="post" action="{{.DismissPath}}">
            <button type="submit" class="close" aria-label="Close">&times;</button>
        </form>
    </header>
    <main class="content">
    {{- range .Doc.Sections}}
        <section class="policy-section">
            <h2>{{.Heading}}</h2>
            {{- range .Paragraphs}}
            <p>{{.}}</p>
            {{- end}}
            {{- if .Bullets}}
            <ul>
                {{- range .Bullets}}
                <li>{{.}}</li>
                {{- end}}
            </ul>
            {{- end}}
        </section>
    {{- end}}
        <p class="updated">Last updated: {{.Doc.LastUpdated}}</p>
    </main>
</div>
</body>
</html>
`))

// View presents one PolicyDocument as a full-viewport overlay with a single
// close control. It does not track whether it is visible; the host mounts
// and unmounts it.
type View struct {
	slug      string
	doc       PolicyDocument
	onDismiss func()
}

// NewView builds a view for doc. onDismiss runs each time the close control
// is activated and may be nil.
func NewView(slug string, doc PolicyDocument, onDismiss func()) *View {
	return &View{
		slug:      slug,
		doc:       doc.clone(),
		onDismiss: onDismiss,
	}
}

// NewPrivacyView is the view for the privacy policy, served under /privacy.
func NewPrivacyView(onDismiss func()) *View {
	return NewView("privacy", privacyPolicy, onDismiss)
}

// NewRefundView is the view for the refund policy, served under /refund.
func NewRefundView(onDismiss func()) *View {
	return NewView("refund", refundPolicy, onDismiss)
}

func (v *View) Slug() string {
	return v.slug
}

func (v *View) Title() string {
	return v.doc.Title
}

// Path is where the view is mounted.
func (v *View) Path() string {
	return "/" + v.slug
}

// DismissPath is the target of the close control.
func (v *View) DismissPath() string {
	return v.Path() + "/dismiss"
}

// Sections returns the section headings in render order.
func (v *View) Sections() []string {
	return v.doc.Headings()
}

// Render writes the overlay. The output depends only on the document, so
// rendering the same view twice produces identical bytes.
func (v *View) Render(w io.Writer) error {
	data := struct {
		Doc         PolicyDocument
		DismissPath string
	}{
		Doc:         v.doc,
		DismissPath: v.DismissPath(),
	}
	if err := overlayTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render %s view: %w", v.slug, err)
	}
	return nil
}

// Dismiss is the close control's activation. Each call invokes the dismiss
// callback once.
func (v *View) Dismiss() {
	if v.onDismiss != nil {
		v.onDismiss()
	}
}
