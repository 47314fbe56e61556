package grammar

import (
	"os"
	"strings"
)

// checkPath validates path per §6's Grammar file loader contract: must
// name a non-empty file whose name ends in ".txt".
//
// Grounded in cfg_utils.__check_path.
func checkPath(path string) error {
	if path == "" || !strings.HasSuffix(path, ".txt") {
		return ErrInvalidPath
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return ErrInvalidPath
	}
	return nil
}

// LoadCFGFile reads and parses a CFG from a ".txt" file, per
// cfg_utils.get_wcnf_from_file's path validation plus ParseCFG's text
// grammar.
func LoadCFGFile(path string, start string) (*CFG, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrInvalidPath
	}
	return ParseCFG(string(data), start)
}

// LoadECFGFile reads and parses an ECFG from a ".txt" file, mirroring
// ecfg_utils.ECFG.from_file's path handling plus ParseECFG's text grammar.
func LoadECFGFile(path string, start string) (*ECFG, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrInvalidPath
	}
	return ParseECFG(string(data), start)
}
