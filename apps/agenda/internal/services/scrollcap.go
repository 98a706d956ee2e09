package services

// ScrollCapService computes the height cap applied to the past-events list
// so that only a fixed number of cards is visible before scrolling.
type ScrollCapService struct {
	maxVisibleCards int
}

// CapHeight returns the pixel height capping a card list to the configured
// number of visible cards. The second return value is false when no cap may
// be applied: the list already fits entirely, or layout has not produced
// usable measurements yet and capping would collapse the container.
func (service *ScrollCapService) CapHeight(
	heights []float64,
	gap float64,
) (float64, bool) {
	if service.maxVisibleCards <= 0 || len(heights) <= service.maxVisibleCards {
		return 0, false
	}

	var total float64
	for _, height := range heights[:service.maxVisibleCards] {
		total += height
	}

	if total <= 0 {
		return 0, false
	}

	total += float64(service.maxVisibleCards-1) * gap

	return total, true
}
