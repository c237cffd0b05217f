package asciigif

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	It("returns one canvas sized frame per gif frame", func() {
		frames, err := Decode(encodeGIF(solidFrame(10, 10, color.White), solidFrame(10, 10, color.Black)))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(2))
		for _, frame := range frames {
			Expect(frame.Bounds()).To(Equal(image.Rect(0, 0, 10, 10)))
		}
		Expect(frames[0].RGBAAt(5, 5)).To(Equal(color.RGBA{255, 255, 255, 255}))
		Expect(frames[1].RGBAAt(5, 5)).To(Equal(color.RGBA{0, 0, 0, 255}))
	})

	Describe("compositing", func() {
		var (
			white  = color.RGBA{255, 255, 255, 255}
			black  = color.RGBA{0, 0, 0, 255}
			layers []*image.Paletted
		)

		BeforeEach(func() {
			layers = []*image.Paletted{
				solidFrame(4, 4, color.Black),
				solidRect(image.Rect(0, 0, 2, 2), color.White),
				solidRect(image.Rect(2, 2, 4, 4), color.White),
			}
		})

		It("draws partial frames over the previous canvas", func() {
			frames, err := Decode(encodeGIFWithDisposal([]byte{gif.DisposalNone, gif.DisposalNone, gif.DisposalNone}, layers...))
			Expect(err).NotTo(HaveOccurred())
			Expect(frames[1].RGBAAt(0, 0)).To(Equal(white))
			Expect(frames[1].RGBAAt(3, 3)).To(Equal(black))
			Expect(frames[2].RGBAAt(0, 0)).To(Equal(white))
			Expect(frames[2].RGBAAt(3, 3)).To(Equal(white))
		})

		It("clears to transparent on background disposal", func() {
			frames, err := Decode(encodeGIFWithDisposal([]byte{gif.DisposalNone, gif.DisposalBackground, gif.DisposalNone}, layers...))
			Expect(err).NotTo(HaveOccurred())
			Expect(frames[1].RGBAAt(0, 0)).To(Equal(white))
			Expect(frames[2].RGBAAt(0, 0)).To(Equal(color.RGBA{}))
			Expect(frames[2].RGBAAt(3, 0)).To(Equal(black))
			Expect(frames[2].RGBAAt(3, 3)).To(Equal(white))
		})

		It("restores the canvas on previous disposal", func() {
			frames, err := Decode(encodeGIFWithDisposal([]byte{gif.DisposalNone, gif.DisposalPrevious, gif.DisposalNone}, layers...))
			Expect(err).NotTo(HaveOccurred())
			Expect(frames[1].RGBAAt(0, 0)).To(Equal(white))
			Expect(frames[2].RGBAAt(0, 0)).To(Equal(black))
			Expect(frames[2].RGBAAt(3, 3)).To(Equal(white))
		})

		It("does not share pixels between frames", func() {
			frames, err := Decode(encodeGIF(layers...))
			Expect(err).NotTo(HaveOccurred())
			frames[0].SetRGBA(0, 0, white)
			Expect(frames[1].RGBAAt(3, 3)).To(Equal(black))
			frames[2].SetRGBA(3, 3, black)
			Expect(frames[1].RGBAAt(3, 3)).To(Equal(black))
			Expect(frames[0].RGBAAt(3, 3)).To(Equal(black))
		})
	})

	Describe("malformed input", func() {
		expectDecodeError := func(data []byte) *DecodeError {
			frames, err := Decode(data)
			Expect(frames).To(BeNil())
			Expect(err).To(HaveOccurred())
			decodeErr, ok := err.(*DecodeError)
			Expect(ok).To(BeTrue())
			Expect(decodeErr.Error()).To(ContainSubstring("asciigif: decode: "))
			return decodeErr
		}

		It("rejects an empty buffer", func() {
			decodeErr := expectDecodeError(nil)
			Expect(decodeErr.Unwrap()).To(Equal(image.ErrFormat))
		})

		It("rejects garbage", func() {
			expectDecodeError([]byte("definitely not an image"))
		})

		It("rejects a truncated gif", func() {
			data := encodeGIF(solidFrame(10, 10, color.White), solidFrame(10, 10, color.Black))
			expectDecodeError(data[:len(data)/2])
		})

		It("rejects a gif missing its trailer", func() {
			data := encodeGIF(solidFrame(10, 10, color.White))
			expectDecodeError(data[:len(data)-1])
		})

		It("names the format of other images", func() {
			var buf bytes.Buffer
			Expect(png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)))).NotTo(HaveOccurred())
			decodeErr := expectDecodeError(buf.Bytes())
			Expect(decodeErr.Error()).To(ContainSubstring(`"png"`))
		})
	})
})
