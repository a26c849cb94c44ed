package showcase

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/bulma"
)

// ToastsID is the id of the ToastContainer.
const ToastsID = "toasts"

// Flash is a one-time notification shown after an operation.
type Flash struct {
	Color   bulma.Color
	Message string
}

// toast renders one flash as a dismissible light Notification.
func toast(f Flash) templ.Component {
	return bulma.Notification(bulma.NotificationProps{
		Color:       f.Color,
		Light:       true,
		Dismissible: true,
		Base:        bulma.Base{Attrs: templ.Attributes{"role": "status"}},
	}, bulma.Text(f.Message))
}

// flashesOOB appends flashes to the ToastContainer with an out-of-band swap.
func flashesOOB(flashes []Flash) templ.Component {
	if len(flashes) == 0 {
		return nil
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		items := make([]templ.Component, len(flashes))
		for i, f := range flashes {
			items[i] = toast(f)
		}
		return bulma.Block(bulma.Base{
			ID:    ToastsID,
			Attrs: templ.Attributes{"hx-swap-oob": "beforeend"},
		}, items...).Render(ctx, w)
	})
}

// ToastContainer is the fixed corner region flashes are appended to.
// Layout places it once at the end of every page.
func ToastContainer() templ.Component {
	return bulma.Block(bulma.Base{
		ID:    ToastsID,
		Style: "position: fixed; right: 1.5rem; bottom: 1.5rem; z-index: 50; max-width: 24rem;",
	})
}
