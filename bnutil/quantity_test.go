package bnutil

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type feeConfig struct {
	Tx struct {
		MinPriorityFeeWei Quantity  `yaml:"min_priority_fee_wei" json:"min_priority_fee_wei"`
		MaxFeeWei         *Quantity `yaml:"max_fee_wei" json:"max_fee_wei"`
	} `yaml:"tx" json:"tx"`
}

func TestQuantityJSON(t *testing.T) {
	var cfg feeConfig
	cfg.Tx.MinPriorityFeeWei = *NewQuantity(big.NewInt(1000000000))
	cfg.Tx.MaxFeeWei = NewQuantity(big.NewInt(255))

	b, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}
	expected := `{"tx":{"min_priority_fee_wei":"0x3b9aca00","max_fee_wei":"0xff"}}`
	if string(b) != expected {
		t.Fatalf("unexpected json\nexpected=%s\nactual=%s", expected, b)
	}

	var back feeConfig
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}
	if back.Tx.MinPriorityFeeWei.ToInt().Int64() != 1000000000 {
		t.Fatalf("unexpected value: %s", &back.Tx.MinPriorityFeeWei)
	}
	if back.Tx.MaxFeeWei.ToInt().Int64() != 255 {
		t.Fatalf("unexpected value: %s", back.Tx.MaxFeeWei)
	}
}

func TestQuantityUnmarshalTextInvalid(t *testing.T) {
	var q Quantity
	err := json.Unmarshal([]byte(`"0xzz"`), &q)
	if !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("expected ErrInvalidDigit, got %v", err)
	}
}

func TestQuantityYAML(t *testing.T) {
	doc := strings.Join([]string{
		"tx:",
		"  min_priority_fee_wei: 0x3b9aca00",
		"  max_fee_wei: 340282366920938463463374607431768211456",
	}, "\n")

	var cfg feeConfig
	if err := yaml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v", err)
	}
	if cfg.Tx.MinPriorityFeeWei.ToInt().Int64() != 1000000000 {
		t.Fatalf("unexpected value: %s", &cfg.Tx.MinPriorityFeeWei)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 128)
	if cfg.Tx.MaxFeeWei.ToInt().Cmp(want) != 0 {
		t.Fatalf("unexpected value: %s", cfg.Tx.MaxFeeWei)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("yaml.Marshal error: %v", err)
	}
	var back feeConfig
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v\n%s", err, out)
	}
	if back.Tx.MaxFeeWei.ToInt().Cmp(want) != 0 {
		t.Fatalf("yaml round trip lost value:\n%s", out)
	}
}

func TestQuantityYAMLInvalid(t *testing.T) {
	docs := []string{
		"tx:\n  min_priority_fee_wei: 1.5\n",
		"tx:\n  min_priority_fee_wei: 0xgg\n",
		"tx:\n  min_priority_fee_wei: [1, 2]\n",
	}
	for _, doc := range docs {
		var cfg feeConfig
		if err := yaml.Unmarshal([]byte(doc), &cfg); err == nil {
			t.Fatalf("expected error for %q", doc)
		}
	}
}

func TestQuantityString(t *testing.T) {
	if s := NewQuantity(big.NewInt(4096)).String(); s != "0x1000" {
		t.Fatalf("unexpected string: %s", s)
	}
	if s := NewQuantity(nil).String(); s != "0x0" {
		t.Fatalf("unexpected string: %s", s)
	}
}
