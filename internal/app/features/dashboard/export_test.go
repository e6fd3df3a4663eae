package dashboard

import "time"

// SetNow fixes the clock the handler computes against.
func (h *Handler) SetNow(now func() time.Time) {
	h.now = now
}
