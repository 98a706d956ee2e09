package dtos

type ScrollCapDto struct {
	Heights []float64 `json:"heights"`
	Gap     float64   `json:"gap"`
}

func (dto *ScrollCapDto) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if dto.Gap < 0 {
		errs["gap"] = "must not be negative"
	}

	for _, height := range dto.Heights {
		if height < 0 {
			errs["heights"] = "must not contain negative values"
			break
		}
	}

	return len(errs) == 0, errs
}

type ScrollCapResultDto struct {
	Height float64 `json:"height"`
	Apply  bool    `json:"apply"`
}
