// This file is part of Modlink.
//
// Modlink is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Modlink is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Modlink.  If not, see <https://www.gnu.org/licenses/>.

package sourceloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/modlink/curated"
)

// UnreadableError is the pattern used for errors returned when the source
// cannot be read. Test with curated.Is() or curated.Has().
const UnreadableError = "sourceloader: %s: %v"

// HashError is the pattern used when the loaded data does not match the
// expected hash.
const HashError = "sourceloader: %s: unexpected hash value (%s)"

// Loader is used to specify the source to use for a link.
type Loader struct {
	// filename or URL of the source
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. if the field is not nil then Open() will
	// return a reader for this data rather than opening the source
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name is used for identification purposes only.
func NewLoaderFromData(name string, data []byte) Loader {
	ld := Loader{
		Filename: name,
		Data:     data,
	}
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	return filepath.Base(ld.Filename)
}

// HasLoaded returns true if the data for the source is held in memory.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// scheme returns the URL scheme of the filename. an empty string indicates a
// local file.
func (ld Loader) scheme() string {
	u, err := url.Parse(ld.Filename)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https", "file":
		return u.Scheme
	}
	return ""
}

// Load the source data into memory. Subsequent calls to Open() will read from
// memory. Calling Load() when the data is already loaded does nothing.
func (ld *Loader) Load() error {
	if ld.Data != nil {
		return nil
	}

	var data []byte
	var err error

	switch ld.scheme() {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(UnreadableError, ld.Filename, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(UnreadableError, ld.Filename, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
	case "file":
		var u *url.URL
		u, err = url.Parse(ld.Filename)
		if err == nil {
			data, err = os.ReadFile(u.Path)
		}
	default:
		data, err = os.ReadFile(ld.Filename)
	}

	if err != nil {
		return curated.Errorf(UnreadableError, ld.Filename, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashError, ld.Filename, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

// Open the source for reading from the beginning. The returned ReadCloser must
// be closed when the caller has finished with it.
func (ld *Loader) Open() (io.ReadCloser, error) {
	if ld.Data != nil {
		return io.NopCloser(bytes.NewReader(ld.Data)), nil
	}

	switch ld.scheme() {
	case "":
		f, err := os.Open(ld.Filename)
		if err != nil {
			return nil, curated.Errorf(UnreadableError, ld.Filename, err)
		}

		// directories can be opened but not read
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, curated.Errorf(UnreadableError, ld.Filename, err)
		}
		if fi.IsDir() {
			f.Close()
			return nil, curated.Errorf(UnreadableError, ld.Filename, "is a directory")
		}

		return f, nil
	}

	err := ld.Load()
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(ld.Data)), nil
}
