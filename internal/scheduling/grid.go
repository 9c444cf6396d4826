package scheduling

import (
	"github.com/m04kA/BMS-SchedulingService/internal/domain"
	"github.com/m04kA/BMS-SchedulingService/pkg/types"
)

// TileWindow разбивает рабочее окно [start, end) на блоки фиксированного размера,
// слева направо. Хвост короче одного блока отбрасывается и не эмитится
func TileWindow(start, end types.TimeString, blockSizeMinutes int) []domain.TimeWindow {
	if blockSizeMinutes <= 0 || !start.IsBefore(end) {
		return []domain.TimeWindow{}
	}

	blocks := make([]domain.TimeWindow, 0)
	current := start

	for current.IsBefore(end) {
		blockEnd, err := current.AddMinutes(blockSizeMinutes)
		if err != nil {
			// Блок выходит за пределы суток
			break
		}
		if blockEnd.IsAfter(end) {
			// Неполный хвостовой блок
			break
		}

		blocks = append(blocks, domain.TimeWindow{Start: current, End: blockEnd})
		current = blockEnd
	}

	return blocks
}
