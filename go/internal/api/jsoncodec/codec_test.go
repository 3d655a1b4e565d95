package jsoncodec

import "testing"

type sample struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestCodecRoundTrip(t *testing.T) {
	var c Codec
	if c.Name() != "json" {
		t.Fatalf("expected codec name json, got %q", c.Name())
	}

	data, err := c.Marshal(&sample{ID: 42, Name: "Reds"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(data) != `{"id":42,"name":"Reds"}` {
		t.Errorf("unexpected payload %s", data)
	}

	var got sample
	if err := c.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if got.ID != 42 || got.Name != "Reds" {
		t.Errorf("unexpected value %+v", got)
	}
}

func TestCodecUnmarshalEmptyBody(t *testing.T) {
	var got sample
	if err := (Codec{}).Unmarshal(nil, &got); err != nil {
		t.Fatalf("expected empty body to decode to zero value, got %v", err)
	}
}

func TestCodecUnmarshalInvalid(t *testing.T) {
	var got sample
	if err := (Codec{}).Unmarshal([]byte("{"), &got); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
