package matching

import "strings"

// Apply narrows jobs to those passing every supplied filter. Absent
// filter fields are no-ops. The input order is preserved.
func (f *Filters) Apply(jobs []JobPosting) []JobPosting {
	if f == nil {
		return jobs
	}
	out := make([]JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if f.matches(job) {
			out = append(out, job)
		}
	}
	return out
}

func (f *Filters) matches(job JobPosting) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Remote != nil && job.Remote != *f.Remote {
		return false
	}
	if f.SalaryMin > 0 && job.SalaryMax > 0 && job.SalaryMax < f.SalaryMin {
		return false
	}
	if f.SalaryMax > 0 && job.SalaryMin > 0 && job.SalaryMin > f.SalaryMax {
		return false
	}
	if f.JobType != "" && !strings.EqualFold(job.JobType, f.JobType) {
		return false
	}
	if f.ExperienceLevel != "" && !strings.EqualFold(job.ExperienceLevel, f.ExperienceLevel) {
		return false
	}
	if f.Industry != "" && !strings.EqualFold(job.Industry, f.Industry) {
		return false
	}
	if f.PostedAfter != nil && !job.PostedDate.IsZero() && job.PostedDate.Before(*f.PostedAfter) {
		return false
	}
	return true
}
