package scheduling

import (
	"github.com/m04kA/BMS-SchedulingService/internal/domain"
)

// FilterEligible пересекает квалификацию из каталога с фактической доступностью
// на дату (EligibilityFilter): мастер подходит для услуги, если он квалифицирован
// и имеет хотя бы один доступный блок в этот день
//
// restrictTo - опциональное ограничение набора мастеров, заданное вызывающим;
// пустой срез означает отсутствие ограничения
//
// Возвращает serviceID -> упорядоченный список подходящих мастеров
func FilterEligible(
	requirements []domain.ServiceRequirement,
	slotsByProfessional map[int64][]domain.TimeBlock,
	restrictTo []int64,
) map[int64][]int64 {
	restricted := make(map[int64]bool, len(restrictTo))
	for _, id := range restrictTo {
		restricted[id] = true
	}

	eligible := make(map[int64][]int64, len(requirements))

	for _, req := range requirements {
		profs := make([]int64, 0, len(req.QualifiedProfessionalIDs))
		for _, profID := range req.QualifiedProfessionalIDs {
			if len(restrictTo) > 0 && !restricted[profID] {
				continue
			}
			if hasAvailableBlock(slotsByProfessional[profID]) {
				profs = append(profs, profID)
			}
		}
		eligible[req.ServiceID] = profs
	}

	return eligible
}

func hasAvailableBlock(blocks []domain.TimeBlock) bool {
	for _, b := range blocks {
		if b.Available {
			return true
		}
	}
	return false
}
