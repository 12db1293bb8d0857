package tape

// half is one side of the tape. Reads past the end return blank, writes past
// the end extend it with blank cells up to and including the written offset.
type half struct {
	cells []string
	blank string
}

func (h *half) len() int { return len(h.cells) }

func (h *half) get(i int) string {
	if i < len(h.cells) {
		return h.cells[i]
	}
	return h.blank
}

func (h *half) set(i int, v string) {
	h.growTo(i + 1)
	h.cells[i] = v
}

func (h *half) growTo(n int) {
	for len(h.cells) < n {
		h.cells = append(h.cells, h.blank)
	}
}
