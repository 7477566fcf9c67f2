package glbatch

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glbatch/arraybuf"
)

// imageRGBA returns img as tightly packed RGBA, scaled to width x height
// when both are positive.
func imageRGBA(img image.Image, width, height int, scaler xdraw.Interpolator) *image.RGBA {
	src := img.Bounds()
	if width <= 0 || height <= 0 {
		width, height = src.Dx(), src.Dy()
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == src.Dx() && height == src.Dy() {
		xdraw.Copy(dst, image.Point{}, img, src, xdraw.Src, nil)
		return dst
	}
	scaler.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}

// ImageArray returns the pixels of img as a uint8 array of shape
// [height, width, 4], the layout texImage2D expects for RGBA/UNSIGNED_BYTE.
func ImageArray(img image.Image) *arraybuf.Array {
	rgba := imageRGBA(img, 0, 0, xdraw.NearestNeighbor)
	b := rgba.Bounds()
	return arraybuf.MustNew(rgba.Pix, b.Dy(), b.Dx(), 4)
}

// CreateTextureFromImage uploads img as a new RGBA8 2D texture and returns
// its handle. The emitted sequence is
//
//	createTexture bindTexture(TEXTURE_2D) texImage2D(RGBA8, RGBA, UNSIGNED_BYTE)
//	[generateMipmap texParameter(MIN_FILTER, LINEAR_MIPMAP_LINEAR)]
//	texParameter(MAG_FILTER, LINEAR)
//
// Mipmaps are generated unless WithoutMipmaps is given; without them
// MIN_FILTER is LINEAR. WithImageSize rescales the image first.
func (b *Builder) CreateTextureFromImage(img image.Image, opts ...ComposeOption) (Handle, error) {
	const op = "CreateTextureFromImage"
	if img == nil {
		return None, invalidf(op, "image", "nil", "image required")
	}
	if r := img.Bounds(); r.Empty() {
		return None, invalid(op, "bounds", r)
	}
	o := newComposeOptions(opts)
	if o.width < 0 || o.height < 0 || (o.width == 0) != (o.height == 0) {
		return None, invalidf(op, "size", image.Pt(o.width, o.height), "width and height must both be positive")
	}

	rgba := imageRGBA(img, o.width, o.height, o.scaler)
	r := rgba.Bounds()
	pixels := arraybuf.MustNew(rgba.Pix, r.Dy(), r.Dx(), 4)

	tex := b.CreateTexture()
	_ = b.BindTexture(Texture2D, tex)
	_ = b.TexImage2D(Image2D, 0, RGBA8, r.Dx(), r.Dy(), PixelRGBA, TypeUnsignedByte, pixels)
	minFilter := Linear
	if o.mipmaps {
		_ = b.GenerateMipmap(Texture2D)
		minFilter = LinearMipmapLinear
	}
	_ = b.TexParameter(Texture2D, TextureMinFilter, TexEnum(minFilter))
	_ = b.TexParameter(Texture2D, TextureMagFilter, TexEnum(Linear))

	b.finish(o)
	return tex, nil
}
