package farms

import "errors"

var ErrFarmNotFound = errors.New("farm not found")
