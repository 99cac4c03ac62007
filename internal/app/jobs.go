// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/z5labs/minfold/present"
	"github.com/z5labs/minfold/source"
)

// Job is a single named reduction.
type Job struct {
	Name   string
	Source source.Source
	Style  present.Style
	Sum    bool
	Print  bool

	// Path is the absolute OS path of the input file, if any.
	Path string
}

// JobError occurs when a job fails to read its input or print its results.
type JobError struct {
	Name  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e JobError) Error() string {
	return fmt.Sprintf("job %s: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e JobError) Unwrap() error {
	return e.Cause
}

func buildJobs(cfg Config, fsys fs.FS, files []string) ([]Job, error) {
	jobs := make([]Job, 0, len(cfg.Jobs)+len(files))
	for i, jc := range cfg.Jobs {
		job, err := buildJob(cfg, jc, fsys)
		if err != nil {
			name := jc.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			return nil, JobError{Name: name, Cause: err}
		}
		if job.Name == "" {
			job.Name = strconv.Itoa(i)
		}
		jobs = append(jobs, job)
	}

	for _, file := range files {
		job, err := buildJob(cfg, JobConfig{Name: file, File: file}, fsys)
		if err != nil {
			return nil, JobError{Name: file, Cause: err}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func buildJob(cfg Config, jc JobConfig, fsys fs.FS) (Job, error) {
	job := Job{
		Name:  jc.Name,
		Style: cfg.Output.Style,
		Sum:   jc.Sum,
		Print: jc.Print,
	}

	if jc.Style != "" {
		style, err := present.ParseStyle(jc.Style)
		if err != nil {
			return Job{}, err
		}
		job.Style = style
	}

	if jc.Values != nil || jc.File == "" {
		job.Source = source.Static(jc.Values...)
		return job, nil
	}

	if fsys != nil {
		job.Source = source.File(fsys, filepath.ToSlash(jc.File))
		return job, nil
	}

	path, err := filepath.Abs(jc.File)
	if err != nil {
		return Job{}, err
	}
	job.Path = path
	job.Source = source.File(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	return job, nil
}
