package features

import (
    "testing"
    "time"

    "DeceptionIndex/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestFilterRegularSeason(t *testing.T) {
    events := []models.PitchEvent{
        {PitchType: "FF", GameDate: day(2024, time.March, 20)},
        {PitchType: "FF", GameDate: day(2024, time.April, 1)},
        {PitchType: "SL", GameDate: day(2024, time.October, 30)},
        {PitchType: "SL", GameDate: day(2024, time.November, 2)},
        {PitchType: "CH"},
    }
    got := FilterRegularSeason(events, DefaultSeasonMonths)
    if len(got) != 2 {
        t.Fatalf("expected 2 events, got %d", len(got))
    }
    if got[0].GameDate.Month() != time.April || got[1].GameDate.Month() != time.October {
        t.Fatalf("unexpected events %+v", got)
    }
}

func TestFilterRegularSeasonAllOffSeason(t *testing.T) {
    events := []models.PitchEvent{{PitchType: "FF", GameDate: day(2024, time.February, 25)}}
    if got := FilterRegularSeason(events, []int{4, 5}); len(got) != 0 {
        t.Fatalf("expected empty, got %d", len(got))
    }
}

func TestFilterRegularSeasonEmptyMonthsUsesDefault(t *testing.T) {
    events := []models.PitchEvent{{PitchType: "FF", GameDate: day(2024, time.July, 4)}}
    if got := FilterRegularSeason(events, nil); len(got) != 1 {
        t.Fatalf("expected default months to keep July")
    }
}

func TestGroupByPitchType(t *testing.T) {
    events := []models.PitchEvent{{PitchType: "SL"}, {PitchType: "FF"}, {PitchType: ""}, {PitchType: "SL"}}
    groups, order := GroupByPitchType(events)
    if len(order) != 2 || order[0] != "SL" || order[1] != "FF" {
        t.Fatalf("unexpected order %v", order)
    }
    if len(groups["SL"]) != 2 || len(groups["FF"]) != 1 {
        t.Fatalf("unexpected groups %v", groups)
    }
}
