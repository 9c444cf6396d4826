package scheduling

import (
	"sort"

	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// GenerateDaySlots генерирует упорядоченный список блоков мастера на дату
// из снимка календаря (SlotGenerator + UnavailabilityResolver)
//
// Порядок проверки недоступности для каждого блока строгий:
//  1. полнодневная блокировка (VACATION/SICK_LEAVE/DAY_OFF) - весь день пустой,
//     блоки не генерируются вообще
//  2. пересечение с перерывом - блок недоступен
//  3. пересечение с частичной блокировкой - блок недоступен
//  4. пересечение с активной записью (кроме записей excludeClientID) - блок
//     недоступен, запоминается ID записи
//
// Первое сработавшее правило выигрывает. Все блоки, кроме случая (1), эмитятся
// независимо от доступности
//
// Неизвестный мастер или день без рабочих окон - пустой список, не ошибка
func GenerateDaySlots(snap DaySnapshot, excludeClientID *int64) []domain.TimeBlock {
	blockSize := snap.BlockSizeMinutes
	if blockSize <= 0 {
		blockSize = domain.DefaultBlockSizeMinutes
	}

	// Полнодневная блокировка обнуляет день целиком, минуя генерацию блоков
	for _, bp := range snap.BlockedPeriods {
		if bp.Kind.IsFullDay() {
			return []domain.TimeBlock{}
		}
	}

	// Рабочие окна сортируются по началу: блоки дня должны идти по возрастанию
	windows := make([]domain.WorkingWindow, len(snap.WorkingWindows))
	copy(windows, snap.WorkingWindows)
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.IsBefore(windows[j].Start)
	})

	slots := make([]domain.TimeBlock, 0)

	for _, window := range windows {
		for _, grid := range TileWindow(window.Start, window.End, blockSize) {
			block := resolveBlock(grid, snap, excludeClientID)
			slots = append(slots, block)
		}
	}

	return slots
}

// resolveBlock вычисляет доступность одного блока по правилам приоритета
func resolveBlock(grid domain.TimeWindow, snap DaySnapshot, excludeClientID *int64) domain.TimeBlock {
	block := domain.TimeBlock{Start: grid.Start, End: grid.End, Available: true}

	// 2. Перерывы
	for _, br := range snap.Breaks {
		if domain.Overlaps(grid.Start, grid.End, br.Start, br.End) {
			block.Available = false
			return block
		}
	}

	// 3. Частичные блокировки
	for _, bp := range snap.BlockedPeriods {
		if blockedPeriodOverlaps(&bp, grid) {
			block.Available = false
			return block
		}
	}

	// 4. Активные записи (кроме записей исключенного клиента)
	// Единственная проверка, которая записывает ID блокирующей записи
	for _, appt := range snap.Appointments {
		if !appt.IsActive() {
			continue
		}
		if excludeClientID != nil && appt.ClientID == *excludeClientID {
			continue
		}
		if domain.Overlaps(grid.Start, grid.End, appt.Start, appt.End) {
			block.Available = false
			id := appt.ID
			block.BlockingAppointmentID = &id
			break
		}
	}

	return block
}

// blockedPeriodOverlaps проверяет пересечение частичной блокировки с блоком
// Блокировка без явных временных границ покрывает весь день
func blockedPeriodOverlaps(bp *domain.BlockedPeriod, grid domain.TimeWindow) bool {
	if bp.CoversWholeDay() {
		return true
	}
	return domain.Overlaps(grid.Start, grid.End, *bp.Start, *bp.End)
}
