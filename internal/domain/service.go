package domain

// Renderer сервис рендера кадра
type Renderer interface {
	Render(opts RenderOptions) (*FrameBuffer, error)
}

// StripSource hands out strips to workers until the image is exhausted.
type StripSource interface {
	Claim() (Strip, bool)
}
