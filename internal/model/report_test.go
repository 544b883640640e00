package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSSLInfoJSON(t *testing.T) {
	ok := SSLInfo{Version: "TLSv1.3", Expiry: "Jan  1 00:00:00 2030 GMT"}
	data, err := json.Marshal(ok)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// The success shape never carries an error key, and vice versa.
	if strings.Contains(string(data), "error") {
		t.Errorf("success shape leaked error key: %s", data)
	}
	if !strings.Contains(string(data), `"version":"TLSv1.3"`) {
		t.Errorf("missing version: %s", data)
	}

	failed := SSLInfo{Error: "SSL certificate issue detected"}
	data, err = json.Marshal(failed)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"error":"SSL certificate issue detected"}` {
		t.Errorf("failure shape = %s", data)
	}

	var back SSLInfo
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Failed() {
		t.Error("round-tripped failure lost its error state")
	}
}

func TestRobotsInfoJSON(t *testing.T) {
	absent := RobotsInfo{Exists: false, Allowed: true}
	data, err := json.Marshal(absent)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"exists":false}` {
		t.Errorf("absent shape = %s, want exists only", data)
	}

	delay := 5.0
	present := RobotsInfo{Exists: true, Allowed: true, CrawlDelay: &delay}
	data, err = json.Marshal(present)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"exists":true,"allowed":true,"crawl_delay":5}` {
		t.Errorf("present shape = %s", data)
	}

	var back RobotsInfo
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Exists || !back.Allowed || back.CrawlDelay == nil || *back.CrawlDelay != 5 {
		t.Errorf("round trip = %+v", back)
	}
}
