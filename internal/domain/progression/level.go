package progression

import "fmt"

// daysPerLevel is the number of qualifying work-days per level.
const daysPerLevel = 3

// Level derives the level from total work-days. Monotonic: it never
// decreases as tenure grows.
func Level(totalDays int) int {
	if totalDays < 0 {
		return 0
	}
	return totalDays / daysPerLevel
}

// terminalTitle is granted past the end of the title table.
const terminalTitle = "줄눈 마스터"

// levelTitles maps levels 1..100 to their titles.
var levelTitles = map[int]string{
	1: "현장 참관자", 2: "작업 보조", 3: "도구 전달자", 4: "정리 담당", 5: "준비 인원",
	6: "초급 보조", 7: "현장 적응 중", 8: "기본 작업 보조", 9: "반복 작업 가능", 10: "현장 투입 인원",
	11: "초급 시공 보조", 12: "줄눈 보조 작업자", 13: "단순 구간 담당", 14: "보조 시공 인력", 15: "초급 줄눈 작업자",
	16: "기본 시공 가능", 17: "단독 보조 수행", 18: "작업 지시 이해", 19: "현장 루틴 숙지", 20: "시공 참여 인력",
	21: "공정 이해자", 22: "작업 순서 인지", 23: "재료 구분 가능", 24: "기본 판단 가능", 25: "시공 흐름 이해",
	26: "문제 인지 가능", 27: "수정 작업 수행", 28: "실수 관리 가능", 29: "현장 대응 인력", 30: "부분 책임자",
	31: "안정 시공 인력", 32: "단독 구간 담당", 33: "기본 마감 가능", 34: "반복 품질 유지", 35: "클레임 최소화",
	36: "작업 속도 확보", 37: "일정 준수 인력", 38: "품질 유지 담당", 39: "현장 신뢰 인력", 40: "독립 작업 가능",
	41: "줄눈 기술자", 42: "현장 판단 가능자", 43: "공정 조율 가능", 44: "문제 해결 인력", 45: "기준 준수 기술자",
	46: "시공 완성도 관리", 47: "작업 설계 가능", 48: "현장 주력 인력", 49: "신뢰 기술자", 50: "중급 줄눈 기술자",
	51: "숙련 시공 인력", 52: "고난도 대응 가능", 53: "품질 기준 유지자", 54: "작업 안정화 담당", 55: "현장 핵심 인력",
	56: "복합 구간 담당", 57: "속도·품질 병행", 58: "작업 리듬 유지자", 59: "기준 공유 인력", 60: "숙련 줄눈공",
	61: "현장 중심 기술자", 62: "시공 리더급", 63: "팀 작업 주도", 64: "후배 가이드 가능", 65: "품질 책임 인력",
	66: "공정 관리 가능", 67: "현장 총괄 보조", 68: "작업 기준 전달자", 69: "팀 안정화 인력", 70: "현장 리더",
	71: "고급 줄눈 기술자", 72: "고난도 전담 인력", 73: "결과 예측 가능", 74: "기준 유지 장인", 75: "현장 신뢰 핵심",
	76: "재시공 최소화", 77: "품질 기준점", 78: "기술 기준자", 79: "이름이 품질", 80: "줄눈 장인",
	81: "최상급 기술자", 82: "현장 완성도 책임자", 83: "대체 불가 인력", 84: "기술 정점 인물", 85: "교육 가능 수준",
	86: "기준 설계자", 87: "기술 전수 가능", 88: "현장 상징 인물", 89: "팀 핵심 축", 90: "마스터 기술자",
	91: "줄눈 최고 숙련자", 92: "기술 기준 보유자", 93: "현장 설계 인력", 94: "품질 철학 보유", 95: "시스템 이해자",
	96: "기술 총괄급", 97: "기준 창출자", 98: "장인 중의 장인", 99: "최종 단계", 100: terminalTitle,
}

// TitleForLevel returns the title for a level. Levels past the table keep
// the terminal title; level 0 (and anything unmapped below it) falls back
// to the plain "Lv.N" label.
func TitleForLevel(level int) string {
	if level > 100 {
		return terminalTitle
	}
	if title, ok := levelTitles[level]; ok {
		return title
	}
	return fmt.Sprintf("Lv.%d", level)
}

// TitleForDays returns the title for a tenure expressed in work-days.
func TitleForDays(totalDays int) string {
	return TitleForLevel(Level(totalDays))
}

// DetectLevelUp compares tenure before and after a single event. It reports
// the jump once, even when several levels are skipped by one event.
func DetectLevelUp(currentDays, previousDays int) (leveledUp bool, newLevel, oldLevel int) {
	newLevel = Level(currentDays)
	oldLevel = Level(previousDays)
	return newLevel > oldLevel, newLevel, oldLevel
}

// LevelProgress reports progress toward the next level as a percentage and
// the number of work-days remaining.
func LevelProgress(totalDays int) (percent int, daysToNext int) {
	level := Level(totalDays)
	lower := level * daysPerLevel
	upper := (level + 1) * daysPerLevel
	percent = (totalDays - lower) * 100 / daysPerLevel
	return percent, upper - totalDays
}

// ProgressBar renders a ten-cell bar for a 0..100 percentage.
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent / 10
	bar := ""
	for i := 0; i < 10; i++ {
		if i < filled {
			bar += "■"
		} else {
			bar += "□"
		}
	}
	return bar
}
