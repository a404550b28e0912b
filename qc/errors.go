package qc

import (
	"fmt"

	"github.com/uyouii/nanopore-qc/common"
)

func errMismatched(graph string) error {
	return fmt.Errorf("%s: %w", graph, common.ErrorMismatchedLength)
}
