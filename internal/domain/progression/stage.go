package progression

import "fmt"

// Stage is one of the seven awakening bands. Boundaries line up with the
// pay schedule's range starts.
type Stage struct {
	Index   int
	Symbol  string
	Name    string
	MinDays int
}

// Stages in ascending order. A worker is in the highest stage whose
// MinDays does not exceed their tenure.
var Stages = []Stage{
	{Index: 0, Symbol: "🟤", Name: "브론즈", MinDays: 0},
	{Index: 1, Symbol: "⚪", Name: "실버", MinDays: 45},
	{Index: 2, Symbol: "🟡", Name: "골드", MinDays: 90},
	{Index: 3, Symbol: "🔵", Name: "플래티넘", MinDays: 135},
	{Index: 4, Symbol: "🟣", Name: "다이아", MinDays: 180},
	{Index: 5, Symbol: "🔴", Name: "레전드", MinDays: 225},
	{Index: 6, Symbol: "👑", Name: "마스터", MinDays: 270},
}

// stageBoundaries are the crossings that trigger an awakening, ascending.
var stageBoundaries = []int{45, 90, 135, 180, 225, 270}

// skillNames labels the wage-raise milestones a worker can "unlock".
var skillNames = map[int]string{
	45:  "고글 없이 그라인더 작업하기",
	91:  "안전장비 착용 습관화",
	136: "현장 리더십 발휘",
	181: "마스터 크래프트맨",
}

// StageFor returns the awakening stage for a tenure.
func StageFor(totalDays int) Stage {
	current := Stages[0]
	for _, s := range Stages {
		if totalDays >= s.MinDays {
			current = s
		}
	}
	return current
}

// StageProgress reports progress toward the next awakening boundary.
// percent is floored; once the final boundary (270) is reached the progress
// is pinned at 100 and next is nil.
func StageProgress(totalDays int) (percent int, daysToNext int, next *int) {
	if totalDays >= stageBoundaries[len(stageBoundaries)-1] {
		return 100, 0, nil
	}

	lower := 0
	upper := stageBoundaries[0]
	for _, boundary := range stageBoundaries {
		if totalDays >= boundary {
			lower = boundary
		} else {
			upper = boundary
			break
		}
	}

	percent = (totalDays - lower) * 100 / (upper - lower)
	boundary := upper
	return percent, upper - totalDays, &boundary
}

// DetectStageCrossing reports whether a boundary lies in
// (previousDays, currentDays]. Only the lowest crossed boundary is
// reported per event, mirroring level-up semantics.
func DetectStageCrossing(currentDays, previousDays int) (crossed bool, stageIndex int) {
	for i, boundary := range stageBoundaries {
		if previousDays < boundary && boundary <= currentDays {
			return true, i + 1
		}
	}
	return false, 0
}

// SkillForMilestone names the skill unlocked at a wage-raise milestone.
func SkillForMilestone(milestone int) string {
	if name, ok := skillNames[milestone]; ok {
		return name
	}
	return fmt.Sprintf("%d일 달성", milestone)
}
