package commands

import (
	"github.com/spf13/pflag"
)

func addStoreFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVarP(target, "store", "s", "", "Only show deals of this store id (see the stores command).")
}

func addSortFlag(fs *pflag.FlagSet, target *string) {
	fs.StringVar(target, "sort", "none", "Sort by price or normalPrice.")
}
