package verdict

import "testing"

func TestLocalConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Local
		want LocalKind
	}{
		{"Cov", Cov(), LocalCov},
		{"TooShort", TooShort(), LocalTooShort},
		{"MultiPref", MultiPref(), LocalMultiPref},
		{"Slice", Slice(), LocalSlice},
		{"Out", Out(true), LocalOut},
		{"OutSim", OutSim(false), LocalOutSim},
		{"InconcLocal", InconcLocal(InconcLackObs), LocalInconc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", tt.got.Kind, tt.want)
			}
		})
	}
}

func TestOutAndOutSimCarryPrunedFlag(t *testing.T) {
	if !Out(true).Pruned {
		t.Error("Out(true).Pruned = false")
	}
	if Out(false).Pruned {
		t.Error("Out(false).Pruned = true")
	}
	if !OutSim(true).Pruned {
		t.Error("OutSim(true).Pruned = false")
	}
}

func TestInconcLocalCarriesReason(t *testing.T) {
	l := InconcLocal(InconcFilteredNodes)
	if l.Reason != InconcFilteredNodes {
		t.Errorf("Reason = %v, want InconcFilteredNodes", l.Reason)
	}
}

func TestLocalStringIncludesQualifier(t *testing.T) {
	tests := []struct {
		name string
		l    Local
		want string
	}{
		{"Cov has no qualifier", Cov(), "Cov"},
		{"Out(true)", Out(true), "Out(true)"},
		{"Out(false)", Out(false), "Out(false)"},
		{"OutSim(true)", OutSim(true), "OutSim(true)"},
		{"Inconc carries reason", InconcLocal(InconcLackObs), "Inconc(LackObs)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInconcReasonString(t *testing.T) {
	tests := []struct {
		r    InconcReason
		want string
	}{
		{InconcNone, "None"},
		{InconcLackObs, "LackObs"},
		{InconcLifelineRemovalWithCoLocalizations, "UsingLifelineRemovalWithCoLocalizations"},
		{InconcFilteredNodes, "FilteredNodes"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
