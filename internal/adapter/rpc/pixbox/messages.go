package pixbox

type Image struct {
	Name string `cbor:"name"`
	Data []byte `cbor:"data"`
}

func (x *Image) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Image) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type ImageRequest struct {
	ImageId string `cbor:"image_id"`
}

func (x *ImageRequest) GetImageId() string {
	if x != nil {
		return x.ImageId
	}
	return ""
}

type StorageResponse struct {
	Status string `cbor:"status"`
}

func (x *StorageResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}
