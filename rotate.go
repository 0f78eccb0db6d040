// FILE: lixenwraith/logcore/rotate.go
package logcore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// backupName returns the path of numbered backup n of base: app.log -> app.<n>.log
func backupName(base string, n int) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(base, ext), n, ext)
}

// RotateFiles shifts the numbered backups of base up by one and moves base to
// backup 1, keeping at most keep backups. With keep <= 0 base is removed and
// no backup is made. Missing files are skipped.
func RotateFiles(base string, keep int) error {
	if keep <= 0 {
		if err := os.Remove(base); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmtErrorf("failed to remove log file '%s': %w", base, err)
		}
		return nil
	}

	var errs error

	// Backups numbered keep and above have no slot after the shift
	existing, err := listBackups(base)
	if err != nil {
		return err
	}
	for _, n := range existing {
		if n < keep {
			continue
		}
		if err := os.Remove(backupName(base, n)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = combineErrors(errs, fmtErrorf("failed to remove backup '%s': %w", backupName(base, n), err))
		}
	}

	for i := keep - 1; i >= 1; i-- {
		if err := renameIfExists(backupName(base, i), backupName(base, i+1)); err != nil {
			errs = combineErrors(errs, err)
		}
	}

	if err := renameIfExists(base, backupName(base, 1)); err != nil {
		errs = combineErrors(errs, err)
	}

	return errs
}

// listBackups returns the backup numbers present for base, ascending
func listBackups(base string) ([]int, error) {
	dir := filepath.Dir(base)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(filepath.Base(base), ext) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmtErrorf("failed to read log directory '%s': %w", dir, err)
	}

	var nums []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}
		mid := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)
		n, err := strconv.Atoi(mid)
		if err != nil || n < 1 {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums, nil
}

func renameIfExists(from, to string) error {
	if err := os.Rename(from, to); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmtErrorf("failed to rename '%s' to '%s': %w", from, to, err)
	}
	return nil
}
