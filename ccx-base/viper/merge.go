package viper

import (
	"bufio"

	"ccx-rpc/ccx-base/util"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	extConfigsKey = "extConfigs"
)

// MergeExtIfNecessary merges the files listed under extConfigs into the
// loaded config. Missing or broken files are logged and skipped.
func MergeExtIfNecessary() error {
	exts := GetStringSlice(extConfigsKey, nil)
	for _, ext := range exts {
		if !util.FileExist(ext) {
			logrus.Errorf("merge config %s failed, file not exist", ext)
			continue
		}

		err := util.WithReadFile(ext, func(reader *bufio.Reader) error {
			return viper.MergeConfig(reader)
		})
		if err != nil {
			logrus.Errorf("merge config %s failed, %v", ext, err)
		}
	}
	return nil
}
