package entity

import (
	"encoding/json"
	"fmt"
)

// BundleValue es el descriptor de valor de una oferta: o un texto plano
// (ej. "MTN Mashup") o un selector estructurado para el vendor, que puede ser
// por package_id o por network_id + volumen en MB. Los dos selectores son las
// dos variantes de request que acepta Toppily; el catálogo decide cuál usar.
type BundleValue struct {
	Label     string `json:"-"`
	PackageID int64  `json:"id,omitempty"`
	NetworkID int64  `json:"network_id,omitempty"`
	VolumeMB  int64  `json:"volume,omitempty"`
}

// HasPackage indica que la oferta se compra por package_id.
func (v BundleValue) HasPackage() bool { return v.PackageID > 0 }

// HasNetwork indica que la oferta se compra por network_id + volumen.
func (v BundleValue) HasNetwork() bool { return v.NetworkID > 0 && v.VolumeMB > 0 }

// IsSelectable indica que hay selector suficiente para llamar al vendor.
func (v BundleValue) IsSelectable() bool { return v.HasPackage() || v.HasNetwork() }

// IsZero indica un descriptor completamente vacío.
func (v BundleValue) IsZero() bool {
	return v.Label == "" && v.PackageID == 0 && v.NetworkID == 0 && v.VolumeMB == 0
}

// MarshalJSON serializa como string plano cuando solo hay Label, o como
// objeto {"id","network_id","volume"} cuando hay selector estructurado.
func (v BundleValue) MarshalJSON() ([]byte, error) {
	if !v.IsSelectable() && v.VolumeMB == 0 {
		return json.Marshal(v.Label)
	}
	type alias BundleValue
	return json.Marshal(alias(v))
}

// UnmarshalJSON acepta las dos formas históricas del catálogo:
// un string plano o un objeto con id/network_id/volume.
func (v *BundleValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = BundleValue{Label: s}
		return nil
	}
	type alias BundleValue
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("bundle value inválido: %w", err)
	}
	*v = BundleValue(a)
	return nil
}

// DisplayText arma el texto amigable para el storefront:
// volumen en MB → "10GB" / "1.5GB" / "500MB"; con package id → "10GB (Pkg 10)".
func (v BundleValue) DisplayText() string {
	if v.VolumeMB <= 0 {
		if v.Label != "" {
			return v.Label
		}
		return "-"
	}
	volStr := FormatVolume(v.VolumeMB)
	if v.PackageID > 0 {
		return fmt.Sprintf("%s (Pkg %d)", volStr, v.PackageID)
	}
	return volStr
}

// FormatVolume formatea MB a GB cuando aplica: 1000 -> "1GB", 1500 -> "1.50GB", 500 -> "500MB".
func FormatVolume(volMB int64) string {
	if volMB <= 0 {
		return "-"
	}
	if volMB >= 1000 {
		if volMB%1000 == 0 {
			return fmt.Sprintf("%dGB", volMB/1000)
		}
		return fmt.Sprintf("%.2fGB", float64(volMB)/1000.0)
	}
	return fmt.Sprintf("%dMB", volMB)
}
