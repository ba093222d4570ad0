package slidespdf

// SlideImage is an in-memory raster capture of one slide, tagged with
// its 1-based position in the deck.
type SlideImage struct {
	Slide int
	PNG   []byte
}

// captureDeck screenshots every slide from 1 through total, in order.
// No retries: the first failure aborts the job with the underlying
// error.
func captureDeck(s *session, total int) ([]SlideImage, error) {
	images := make([]SlideImage, 0, total)
	for i := 1; i <= total; i++ {
		if err := s.goToSlide(i); err != nil {
			return nil, err
		}
		png, err := s.capture()
		if err != nil {
			return nil, &CaptureError{Slide: i, Err: err}
		}
		images = append(images, SlideImage{Slide: i, PNG: png})
	}
	return images, nil
}
