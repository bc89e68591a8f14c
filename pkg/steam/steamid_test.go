package steam

import "testing"

func TestAccountIDFromSteamID64(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"76561197960287930", "22202", false},
		{"76561197960265728", "0", false},
		{"76561202255233023", "4294967295", false},
		{"76561197960265727", "", true},
		{"76561202255233024", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := AccountIDFromSteamID64(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AccountIDFromSteamID64(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("AccountIDFromSteamID64(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSteamIDRoundTrip(t *testing.T) {
	for _, acct := range []string{"0", "22202", "4294967295"} {
		sid, err := SteamID64FromAccountID(acct)
		if err != nil {
			t.Fatalf("SteamID64FromAccountID(%q) error: %v", acct, err)
		}
		back, err := AccountIDFromSteamID64(sid)
		if err != nil {
			t.Fatalf("AccountIDFromSteamID64(%q) error: %v", sid, err)
		}
		if back != acct {
			t.Errorf("round trip %q -> %q -> %q", acct, sid, back)
		}
	}
}
