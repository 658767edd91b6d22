package progression

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		days int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{5, 1},
		{6, 2},
		{45, 15},
		{299, 99},
		{300, 100},
		{303, 101},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Level(c.days), "Level(%d)", c.days)
	}
}

func TestTitleForLevel(t *testing.T) {
	assert.NotEmpty(t, TitleForLevel(1))
	assert.NotContains(t, TitleForLevel(1), "Lv.")
	assert.NotEmpty(t, TitleForLevel(100))
	assert.NotContains(t, TitleForLevel(100), "Lv.")
	assert.Equal(t, "줄눈 마스터", TitleForLevel(101), "past the table the terminal title holds")
	assert.Equal(t, "Lv.0", TitleForLevel(0), "level 0 falls back to the numeric form")
}

func TestEveryLevelUpToHundredHasTitleOrFallback(t *testing.T) {
	for level := 1; level <= 100; level++ {
		assert.NotEmptyf(t, TitleForLevel(level), "TitleForLevel(%d)", level)
	}
}

func TestDetectLevelUp(t *testing.T) {
	cases := []struct {
		current, previous int
		want              bool
		newLevel          int
	}{
		{3, 2, true, 1},    // crossing the first boundary
		{2, 1, false, 0},   // same level
		{6, 5, true, 2},    // later boundary
		{4, 3, false, 1},   // mid-level step
		{10, 10, false, 3}, // no change at all
	}
	for _, c := range cases {
		label := fmt.Sprintf("DetectLevelUp(%d, %d)", c.current, c.previous)
		up, newLevel, oldLevel := DetectLevelUp(c.current, c.previous)
		assert.Equal(t, c.want, up, label)
		assert.Equal(t, Level(c.current), newLevel, label)
		assert.Equal(t, Level(c.previous), oldLevel, label)
	}
}

func TestLevelProgress(t *testing.T) {
	percent, toNext := LevelProgress(4)
	assert.Equal(t, 33, percent)
	assert.Equal(t, 2, toNext)

	percent, toNext = LevelProgress(6)
	assert.Equal(t, 0, percent, "a fresh level starts at zero")
	assert.Equal(t, 3, toNext)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "□□□□□□□□□□", ProgressBar(0))
	assert.Equal(t, "■■■■■■■■■■", ProgressBar(100))
	assert.Equal(t, "■■■■■□□□□□", ProgressBar(55))
}
