package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"tagcloud2d/cloud"
)

const (
	VERSION = "0.1.0"

	cloudJSONName  = "cloud.json"
	cloudImageName = "cloud.png"
	cloudPDFName   = "cloud.pdf"
	stepsDirName   = "steps"
)

var debugInfo DebugInfo

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		start   time.Time
	)
	root := &cobra.Command{
		Use:          "tagcloud",
		Short:        "把标签以圆形紧凑地排布在中心周围",
		Version:      VERSION,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			start = time.Now()
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debugInfo.TotalTime = time.Since(start)
			debugInfo.report(loggerFromContext(cmd.Context()))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
	root.PersistentFlags().String("config", "", "TOML 配置文件")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newRandomCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newUnpackCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// loadOptions 依次应用默认值、配置文件和显式设置的命令行参数
func loadOptions(cmd *cobra.Command, flags *optionFlags) (Options, error) {
	path, _ := cmd.Flags().GetString("config")
	opts, err := LoadOptions(path, loggerFromContext(cmd.Context()))
	if err != nil {
		return opts, err
	}
	return opts, flags.apply(cmd, &opts)
}

func newLayoutCmd() *cobra.Command {
	var flags optionFlags
	cmd := &cobra.Command{
		Use:   "layout [input]",
		Short: "统计词频并生成标签云",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, &flags)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Input = args[0]
			}
			logger := loggerFromContext(cmd.Context())

			done := track(&debugInfo.ReadTagsTime)
			tags, err := readTags(&opts)
			done()
			if err != nil {
				return err
			}
			logger.Info("读取标签", "count", len(tags), "input", opts.Input)

			data, err := layoutTags(tags, &opts, logger)
			if err != nil {
				return err
			}
			outputs, err := writeOutputs(data, &opts, logger)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), data, outputs)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// layoutTags 按配置的顺序依次放置标签
func layoutTags(tags []Tag, opts *Options, logger *log.Logger) (*CloudData, error) {
	defer track(&debugInfo.LayoutTime)()

	compare, err := cloud.ResolveSort(opts.Sort)
	if err != nil {
		return nil, err
	}
	ordered := slices.Clone(tags)
	if compare != nil {
		slices.SortStableFunc(ordered, func(a, b Tag) int {
			if opts.Reverse {
				return compare(b.Size, a.Size)
			}
			return compare(a.Size, b.Size)
		})
	} else if opts.Reverse {
		slices.Reverse(ordered)
	}

	layouter, err := cloud.NewLayouter(opts.Center(), opts.Strategy)
	if err != nil {
		return nil, err
	}
	layouter.SetLogger(logger)
	for _, t := range ordered {
		if _, err := layouter.PutNext(t.Size); err != nil {
			return nil, fmt.Errorf("放置标签 %q 失败: %w", t.Text, err)
		}
	}
	return newCloudData(layouter, ordered), nil
}

// writeOutputs 按配置的格式渲染并写出 cloud.json，返回写出的文件
func writeOutputs(data *CloudData, opts *Options, logger *log.Logger) ([]string, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	var outputs []string

	data.Canvas = placeCloudInImage(data.Bounds, opts.Margin, opts.MinCanvas)
	if opts.HasFormat("png") {
		stepsDir := ""
		if opts.Steps {
			stepsDir = filepath.Join(opts.OutputDir, stepsDirName)
		}
		img, err := CreateCloudImage(data, opts, stepsDir)
		if err != nil {
			return nil, err
		}
		imagePath := filepath.Join(opts.OutputDir, cloudImageName)
		if err := imaging.Save(img, imagePath); err != nil {
			return nil, fmt.Errorf("保存云图失败: %w", err)
		}
		data.Canvas.Image = cloudImageName
		outputs = append(outputs, imagePath)
		logger.Debug("已保存云图", "path", imagePath, "size", data.Canvas.Size)
	}
	if opts.HasFormat("pdf") {
		pdfPath := filepath.Join(opts.OutputDir, cloudPDFName)
		if err := writeCloudPDF(data, opts, pdfPath); err != nil {
			return nil, fmt.Errorf("生成PDF失败: %w", err)
		}
		outputs = append(outputs, pdfPath)
	}

	jsonPath := filepath.Join(opts.OutputDir, cloudJSONName)
	if err := generateCloudJSON(data, jsonPath); err != nil {
		return nil, fmt.Errorf("生成JSON元数据失败: %w", err)
	}
	return append(outputs, jsonPath), nil
}

func newRandomCmd() *cobra.Command {
	var (
		flags            optionFlags
		count            int
		minSide, maxSide int
		seed             int64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "放置随机尺寸的矩形，用于观察布局算法",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, &flags)
			if err != nil {
				return err
			}
			if count < 0 || minSide < 1 || maxSide < minSide {
				return fmt.Errorf("无效的随机参数: count=%d, min=%d, max=%d", count, minSide, maxSide)
			}
			logger := loggerFromContext(cmd.Context())

			data, err := layoutRandom(&opts, count, minSide, maxSide, seed, logger)
			if err != nil {
				return err
			}
			outputs, err := writeOutputs(data, &opts, logger)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), data, outputs)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 100, "矩形数量")
	cmd.Flags().IntVar(&minSide, "min", 10, "最小边长")
	cmd.Flags().IntVar(&maxSide, "max", 100, "最大边长")
	cmd.Flags().Int64Var(&seed, "seed", 1, "随机种子")
	return cmd
}

// layoutRandom 生成 count 个边长在 [minSide, maxSide) 之间的矩形并一次性放置
func layoutRandom(opts *Options, count, minSide, maxSide int, seed int64, logger *log.Logger) (*CloudData, error) {
	defer track(&debugInfo.LayoutTime)()

	rnd := rand.New(rand.NewSource(seed))
	sizes := make([]cloud.Size, count)
	for i := range sizes {
		sizes[i] = cloud.NewSize(minSide+rnd.Intn(max(maxSide-minSide, 1)), minSide+rnd.Intn(max(maxSide-minSide, 1)))
	}

	compare, err := cloud.ResolveSort(opts.Sort)
	if err != nil {
		return nil, err
	}
	layouter, err := cloud.NewLayouter(opts.Center(), opts.Strategy)
	if err != nil {
		return nil, err
	}
	layouter.SetLogger(logger)
	layouter.Sorter(compare, opts.Reverse)
	if _, err := layouter.PutAll(sizes...); err != nil {
		return nil, err
	}
	return newCloudData(layouter, nil), nil
}

func newRenderCmd() *cobra.Command {
	var flags optionFlags
	cmd := &cobra.Command{
		Use:   "render [cloud.json]",
		Short: "重新渲染已保存的布局",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, &flags)
			if err != nil {
				return err
			}
			data, err := readCloudJSON(args[0])
			if err != nil {
				return err
			}
			outputs, err := writeOutputs(data, &opts, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), data, outputs)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newUnpackCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "unpack [cloud.json]",
		Short: "把渲染好的云图切分为每个标签一张图片",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			n, err := unpack(args[0], output)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("云图解包完成", "tiles", n, "output", output,
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "tiles", "输出目录")
	return cmd
}

func newConfigCmd() *cobra.Command {
	var flags optionFlags
	cmd := &cobra.Command{
		Use:   "config",
		Short: "输出生效的配置",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return opts.Encode(cmd.OutOrStdout())
		},
	}
	flags.register(cmd)
	return cmd
}
