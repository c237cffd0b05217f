package asciigif

import (
	"bytes"
	"context"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type recordingTerminal struct {
	resets  []int
	cursors []bool
}

func (t *recordingTerminal) ResetCursor(rows int) { t.resets = append(t.resets, rows) }
func (t *recordingTerminal) ShowCursor(show bool) { t.cursors = append(t.cursors, show) }

var _ = Describe("Player", func() {
	var (
		buf  bytes.Buffer
		term *recordingTerminal
	)

	BeforeEach(func() {
		buf.Reset()
		term = &recordingTerminal{}
	})

	It("draws each frame in place", func() {
		p := NewPlayer(&buf, term, WithInterval(time.Millisecond), WithLoops(2))
		Expect(p.Play(context.Background(), []string{"ab\ncd", "ef\ngh"})).NotTo(HaveOccurred())
		Expect(buf.String()).To(Equal("ab\ncd\nef\ngh\nab\ncd\nef\ngh\n"))
		Expect(term.resets).To(Equal([]int{2, 2, 2}))
		Expect(term.cursors).To(Equal([]bool{false, true}))
	})

	It("stops when the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := NewPlayer(&buf, term, WithInterval(time.Hour))
		Expect(p.Play(ctx, []string{"@@", "  "})).To(Equal(context.Canceled))
		Expect(buf.String()).To(Equal("@@\n"))
		Expect(term.cursors).To(Equal([]bool{false, true}))
	})

	It("does nothing without frames", func() {
		p := NewPlayer(&buf, term)
		Expect(p.Play(context.Background(), nil)).NotTo(HaveOccurred())
		Expect(buf.Len()).To(Equal(0))
		Expect(term.cursors).To(BeEmpty())
	})

	It("defaults to an xterm on the same writer", func() {
		p := NewPlayer(&buf, nil, WithInterval(time.Millisecond), WithLoops(1))
		Expect(p.Play(context.Background(), []string{"a", "b"})).NotTo(HaveOccurred())
		Expect(buf.String()).To(Equal("\033[?25l" + "a\n" + "\033[999D\033[1A" + "b\n" + "\033[?12l\033[?25h"))
	})
})

var _ = Describe("Xterm", func() {
	It("moves the cursor up the given rows", func() {
		var buf bytes.Buffer
		term := &Xterm{Writer: &buf}
		term.ResetCursor(3)
		Expect(buf.String()).To(Equal("\033[999D\033[3A"))
	})

	It("only returns to the start of the line for zero rows", func() {
		var buf bytes.Buffer
		term := &Xterm{Writer: &buf}
		term.ResetCursor(0)
		Expect(buf.String()).To(Equal("\033[999D"))
	})
})
