package scheduling

import (
	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// FindContiguousWindows ищет все непрерывные последовательности доступных блоков,
// достаточные для услуги заданной длительности (ContiguousWindowFinder)
//
// Окно из blocksNeeded = ceil(duration/blockSize) подряд идущих позиций подходит,
// только если каждый блок доступен И начало каждого блока совпадает с концом
// предыдущего (защита от разрывов между рабочими окнами одного дня)
//
// Возвращаются ВСЕ подходящие стартовые позиции, не только первая
func FindContiguousWindows(blocks []domain.TimeBlock, durationMinutes, blockSizeMinutes int) []domain.TimeWindow {
	if durationMinutes <= 0 || blockSizeMinutes <= 0 || len(blocks) == 0 {
		return []domain.TimeWindow{}
	}

	blocksNeeded := (durationMinutes + blockSizeMinutes - 1) / blockSizeMinutes
	if blocksNeeded > len(blocks) {
		return []domain.TimeWindow{}
	}

	windows := make([]domain.TimeWindow, 0)

	for i := 0; i+blocksNeeded <= len(blocks); i++ {
		run := blocks[i : i+blocksNeeded]
		if !runQualifies(run) {
			continue
		}

		windowEnd, err := run[0].Start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}
		// Конец окна не должен выходить за конец последнего блока
		if windowEnd.IsAfter(run[len(run)-1].End) {
			continue
		}

		windows = append(windows, domain.TimeWindow{Start: run[0].Start, End: windowEnd})
	}

	return windows
}

// runQualifies проверяет, что все блоки серии доступны и строго смежны
func runQualifies(run []domain.TimeBlock) bool {
	for i, block := range run {
		if !block.Available {
			return false
		}
		if i > 0 && !run[i-1].End.Equal(block.Start) {
			return false
		}
	}
	return true
}
