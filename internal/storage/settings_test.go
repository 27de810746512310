package storage

import "testing"

func TestSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting(SettingSound); err != nil || ok {
		t.Errorf("Setting() on empty table = ok %v, err %v", ok, err)
	}
	if !store.BoolSetting(SettingSound, true) {
		t.Error("BoolSetting() should return the default when missing")
	}

	if err := store.SetBoolSetting(SettingSound, false); err != nil {
		t.Fatalf("SetBoolSetting() failed: %v", err)
	}
	if store.BoolSetting(SettingSound, true) {
		t.Error("BoolSetting() = true, expected stored false")
	}

	// Overwrite
	if err := store.SetSetting(SettingSound, "true"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	v, ok, err := store.Setting(SettingSound)
	if err != nil || !ok || v != "true" {
		t.Errorf("Setting() = %q, %v, %v, expected true", v, ok, err)
	}

	if err := store.SetSetting("garbage", "maybe"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if !store.BoolSetting("garbage", true) {
		t.Error("BoolSetting() should fall back on unparsable values")
	}
}

func TestIntSettings(t *testing.T) {
	store := openTestStore(t)

	if got := store.IntSetting(SettingMusicVolume, 25); got != 25 {
		t.Errorf("IntSetting() = %d, expected the default 25", got)
	}
	if err := store.SetIntSetting(SettingMusicVolume, 60); err != nil {
		t.Fatalf("SetIntSetting() failed: %v", err)
	}
	if got := store.IntSetting(SettingMusicVolume, 25); got != 60 {
		t.Errorf("IntSetting() = %d, expected 60", got)
	}

	if err := store.SetSetting(SettingSoundVolume, "loud"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if got := store.IntSetting(SettingSoundVolume, 80); got != 80 {
		t.Errorf("IntSetting() = %d, expected the default on unparsable values", got)
	}
}
