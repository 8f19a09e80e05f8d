package pack

// WriteAll stores data under the texture key in every target that does not
// already have it, and returns how many targets were written.
//
// Existing content is trusted to match data and is not compared. The loop
// stops at the first failure, which is returned as a *WriteError; targets
// written before it keep the new file.
func WriteAll(l *List, key Key, data []byte) (int, error) {
	written := 0
	for _, t := range l.targets {
		p := t.TexturePath(key)
		if t.Exists(p) {
			continue
		}
		if err := t.EnsureParentDirs(p); err != nil {
			return written, &WriteError{Target: t.Name(), Key: key, Err: err}
		}
		if err := t.WriteFile(p, data); err != nil {
			return written, &WriteError{Target: t.Name(), Key: key, Err: err}
		}
		written++
	}
	return written, nil
}
