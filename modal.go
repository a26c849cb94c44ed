package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// closeModal deactivates the enclosing modal in the browser.
const closeModal = "this.closest('.modal').classList.remove('is-active')"

// ModalProps configures a Modal.
type ModalProps struct {
	Base
	Active bool
	// Closable adds the large close button in the top right corner.
	Closable bool
	// OnClose is bound to the background and the close buttons. When empty
	// they deactivate the modal in the browser. Use SwapDelete to remove a
	// server-rendered modal instead.
	OnClose Action
}

// Modal renders an overlay. Children are a ModalContent or a ModalCard.
//
// A modal is usually rendered on demand: a button fetches it into a
// placeholder with Active set, and OnClose removes it again.
func Modal(props ModalProps, children ...templ.Component) templ.Component {
	onClose := orScript(props.OnClose, closeModal)
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		background := newElement("div").set("class", "modal-background").on("click", onClose).component()
		var closeBtn templ.Component
		if props.Closable {
			closeBtn = newElement("button").
				set("class", "modal-close is-large").
				set("aria-label", "close").
				on("click", onClose).
				component()
		}
		return newElement("div").
			base(props.Base, NewClasses("modal").AddIf(props.Active, "is-active")).
			render(ctx, w, background, body, closeBtn)
	})
}

// ModalContent holds arbitrary modal content such as an Image or a Box.
func ModalContent(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("modal-content"), b, children)
}

// ModalCard holds a ModalCardHead, ModalCardBody and ModalCardFoot.
func ModalCard(b Base, children ...templ.Component) templ.Component {
	return container("div", NewClasses("modal-card"), b, children)
}

// ModalCardHeadProps configures a ModalCardHead.
type ModalCardHeadProps struct {
	Base
	// OnClose is bound to the delete button. When empty the button
	// deactivates the modal in the browser.
	OnClose Action
}

// ModalCardHead renders the title bar of a ModalCard followed by a close button.
func ModalCardHead(props ModalCardHeadProps, children ...templ.Component) templ.Component {
	return shell(children, func(ctx context.Context, w io.Writer, body templ.Component) error {
		closeBtn := Delete(DeleteProps{Label: "close", OnClick: orScript(props.OnClose, closeModal)})
		return newElement("header").
			base(props.Base, NewClasses("modal-card-head")).
			render(ctx, w, body, closeBtn)
	})
}

// ModalCardTitle renders the title inside a ModalCardHead.
func ModalCardTitle(b Base, children ...templ.Component) templ.Component {
	return container("p", NewClasses("modal-card-title"), b, children)
}

// ModalCardBody renders the scrollable body of a ModalCard.
func ModalCardBody(b Base, children ...templ.Component) templ.Component {
	return container("section", NewClasses("modal-card-body"), b, children)
}

// ModalCardFoot renders the footer of a ModalCard, typically Buttons.
func ModalCardFoot(b Base, children ...templ.Component) templ.Component {
	return container("footer", NewClasses("modal-card-foot"), b, children)
}
