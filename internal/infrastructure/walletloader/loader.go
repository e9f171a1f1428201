package walletloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"bridge_sdk/internal/app/port"
	"bridge_sdk/internal/domain/entity"
)

// WalletFileLoader implements port.WalletSource by reading the first valid
// address from a file. Blank lines and lines starting with '#' are ignored.
type WalletFileLoader struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
}

// NewWalletFileLoader creates a new WalletFileLoader.
func NewWalletFileLoader(filePath string, loggerInfo func(msg string, args ...any)) port.WalletSource {
	return &WalletFileLoader{
		filePath:   filePath,
		loggerInfo: loggerInfo,
	}
}

// GetWallet returns the wallet in the file, or a disconnected identity if the
// file has no valid address.
func (l *WalletFileLoader) GetWallet() (entity.WalletIdentity, error) {
	file, err := os.Open(l.filePath)
	if err != nil {
		return entity.WalletIdentity{}, fmt.Errorf("failed to open wallet file %s: %w", l.filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !(strings.HasPrefix(line, "0x") && len(line) == 42) {
			if l.loggerInfo != nil {
				l.loggerInfo("Skipping invalid wallet address format", "file", l.filePath, "line_number", lineNum, "address", line)
			}
			continue
		}

		if l.loggerInfo != nil {
			l.loggerInfo("Wallet loaded from file", "address", line, "path", l.filePath)
		}
		return entity.WalletIdentity{Address: line, Signer: entity.Handle("file:" + l.filePath)}, nil
	}

	if err := scanner.Err(); err != nil {
		return entity.WalletIdentity{}, fmt.Errorf("error scanning wallet file %s: %w", l.filePath, err)
	}

	if l.loggerInfo != nil {
		l.loggerInfo("No wallet address found in file", "path", l.filePath)
	}
	return entity.WalletIdentity{}, nil
}
